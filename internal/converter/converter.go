package converter

// strVal unwraps a nullable column for form display; nulls become empty
// strings so edit forms always see a concrete value.
func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// banners normalizes a missing banner list so responses always carry an
// array, never null.
func banners(b []string) []string {
	if b == nil {
		return []string{}
	}
	return b
}
