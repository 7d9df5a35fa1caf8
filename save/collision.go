package save

import "fmt"

// CollisionPolicy decides what happens when two records share an id, which
// happens whenever two power-ups are spawned at the same position.
type CollisionPolicy int

const (
	CollisionReject CollisionPolicy = iota
	CollisionKeepFirst
	CollisionKeepLast
)

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionReject:
		return "reject"
	case CollisionKeepFirst:
		return "first"
	case CollisionKeepLast:
		return "last"
	}
	return fmt.Sprintf("CollisionPolicy(%d)", int(p))
}

// Set implements flag.Value.
func (p *CollisionPolicy) Set(s string) error {
	switch s {
	case "reject":
		*p = CollisionReject
	case "first":
		*p = CollisionKeepFirst
	case "last":
		*p = CollisionKeepLast
	default:
		return fmt.Errorf("save: unknown collision policy %q", s)
	}
	return nil
}

// Index maps records by id, resolving duplicates with policy.
func Index(records []Record, policy CollisionPolicy) (map[string]Record, error) {
	out := make(map[string]Record, len(records))
	for _, r := range records {
		if _, dup := out[r.ID]; dup {
			switch policy {
			case CollisionKeepFirst:
				continue
			case CollisionKeepLast:
			default:
				return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
			}
		}
		out[r.ID] = r
	}
	return out, nil
}
