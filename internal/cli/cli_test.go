package cli

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"faraid-engine/internal/faraid"
	"faraid-engine/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcTable(t *testing.T) {
	out, err := execute(t, "calc", "--estate", "1200", "--husband", "--sons", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Estate: 1200")
	assert.Contains(t, out, "husband")
	assert.Contains(t, out, "son_1")
	assert.Contains(t, out, "3/8")
	assert.Contains(t, out, "450")
	assert.NotContains(t, out, "'Awl")
}

func TestCalcTableAwlNote(t *testing.T) {
	out, err := execute(t, "calc", "--estate", "1500", "--husband", "--father", "--mother", "--daughters", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "'Awl: shares totalled 5/4")
}

func TestCalcJSON(t *testing.T) {
	out, err := execute(t, "calc", "--estate", "900", "--father", "--mother", "-o", "json")
	require.NoError(t, err)

	var d model.Distribution
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.Len(t, d.Heirs, 2)
	assert.Equal(t, "father", d.Heirs[0].ID)
	assert.Equal(t, "2/3", d.Heirs[0].Share)
	assert.Equal(t, "600", d.Heirs[0].Amount.String())
	assert.Equal(t, "none", d.Adjustment)
}

func TestCalcYAML(t *testing.T) {
	out, err := execute(t, "calc", "--estate", "1600", "--wife", "--wives", "2", "--daughters", "1", "--output", "yaml")
	require.NoError(t, err)

	var doc struct {
		Adjustment string `yaml:"adjustment"`
		Heirs      []struct {
			ID     string `yaml:"id"`
			Share  string `yaml:"share"`
			Amount string `yaml:"amount"`
		} `yaml:"heirs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "radd", doc.Adjustment)
	require.Len(t, doc.Heirs, 3)
	assert.Equal(t, "daughter_0", doc.Heirs[2].ID)
	assert.Equal(t, "7/8", doc.Heirs[2].Share)
	assert.Equal(t, "1400", doc.Heirs[2].Amount)
}

func TestCalcSpouseRaddFlag(t *testing.T) {
	_, err := execute(t, "calc", "--estate", "100", "--husband")
	require.ErrorIs(t, err, faraid.ErrUnresolvedResidue)

	out, err := execute(t, "calc", "--estate", "100", "--husband", "--spouse-radd", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"share": "1"`)
}

func TestCalcSpouseRaddFromEnvironment(t *testing.T) {
	t.Setenv("FARAID_CALC_SPOUSE_RADD", "true")

	_, err := execute(t, "calc", "--estate", "100", "--wife", "--wives", "3")
	require.NoError(t, err)
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"zero estate", []string{"--estate", "0", "--sons", "1"}, faraid.ErrInvalidEstateValue},
		{"non-numeric estate", []string{"--estate", "abc", "--sons", "1"}, faraid.ErrInvalidEstateValue},
		{"five wives", []string{"--estate", "10", "--wife", "--wives", "5"}, faraid.ErrInvalidWivesCount},
		{"both spouses", []string{"--estate", "10", "--wife", "--husband"}, faraid.ErrConflictingSpouse},
		{"nobody", []string{"--estate", "10"}, faraid.ErrNoHeirs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"calc"}, tt.args...)...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCalcPlaces(t *testing.T) {
	out, err := execute(t, "calc", "--estate", "1000", "--father", "--mother", "--places", "4", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"amount": "666.6667"`)

	for _, places := range []string{"-3", "40"} {
		_, err := execute(t, "calc", "--estate", "1000", "--father", "--places", places)
		require.Error(t, err, "places %s", places)
		assert.Contains(t, err.Error(), "invalid config")
	}
}

func TestCalcRequiresEstate(t *testing.T) {
	out, err := execute(t, "calc", "--sons", "1")
	require.Error(t, err)
	assert.True(t, strings.Contains(out, "estate") || strings.Contains(err.Error(), "estate"))
}

func TestCalcUnknownOutput(t *testing.T) {
	_, err := execute(t, "calc", "--estate", "10", "--sons", "1", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
