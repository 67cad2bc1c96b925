package faraid

// resolve runs every heir rule against the household and returns the claims of
// the classes that inherit.
func resolve(h Household) ([]claim, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	claims := make([]claim, 0, len(rules))
	for _, r := range rules {
		if c, ok := r.Resolve(h); ok {
			claims = append(claims, c)
		}
	}
	if len(claims) == 0 {
		return nil, ErrNoHeirs
	}
	return claims, nil
}
