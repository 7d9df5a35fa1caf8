package powerup

// Encode returns the canonical tag stored in save records.
func Encode(v Variant) string {
	if v == nil {
		return ""
	}
	return v.Tag()
}

// Decode parses a tag produced by Encode. Matching is exact and
// case-sensitive.
func Decode(s string) (Variant, error) {
	for _, v := range variants {
		if v.Tag() == s {
			return v, nil
		}
	}
	return nil, &UnknownVariantError{Tag: s}
}

// Kind wraps a Variant for text-based encoders such as yaml.
type Kind struct {
	Variant Variant
}

func (k Kind) MarshalText() ([]byte, error) {
	if k.Variant == nil {
		return nil, ErrNoVariant
	}
	return []byte(k.Variant.Tag()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := Decode(string(text))
	if err != nil {
		return err
	}
	k.Variant = v
	return nil
}
