package algorithms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathrace/bestfirst"
	"github.com/katalvlaran/pathrace/bfs"
	"github.com/katalvlaran/pathrace/pathfinder"
)

// ErrUnknownKind is returned for an unrecognized algorithm name or Kind.
var ErrUnknownKind = errors.New("algorithms: unknown kind")

// Kind names one pathfinding algorithm.
type Kind int

// Supported kinds, in catalog order.
const (
	None Kind = iota
	BFS
	Dijkstra
	AStar
	EuclideanAStar
	WeightedAStar
	TiebreakerAStar
	Greedy
)

type kindInfo struct {
	slug    string
	display string
}

var catalog = [...]kindInfo{
	None:            {"none", "None"},
	BFS:             {"bfs", bfs.Name},
	Dijkstra:        {"dijkstra", bestfirst.NameDijkstra},
	AStar:           {"astar", bestfirst.NameAStar},
	EuclideanAStar:  {"euclidean", bestfirst.NameEuclideanAStar},
	WeightedAStar:   {"weighted", bestfirst.NameWeightedAStar},
	TiebreakerAStar: {"tiebreaker", bestfirst.NameTiebreakerAStar},
	Greedy:          {"greedy", bestfirst.NameGreedy},
}

// Kinds returns every Kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(catalog))
	for i := range catalog {
		out[i] = Kind(i)
	}
	return out
}

// DefaultSlots returns the standard comparison line-up.
func DefaultSlots() []Kind {
	return []Kind{Dijkstra, BFS, AStar, Greedy}
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(catalog) }

// String returns the slug of k, e.g. "astar".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].slug
}

// DisplayName returns the pathfinder's human-readable name, e.g. "A*".
func (k Kind) DisplayName() string {
	if !k.valid() {
		return k.String()
	}
	return catalog[k].display
}

// ParseKind maps a slug or display name (case-insensitive, surrounding
// spaces ignored) to its Kind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range catalog {
		if key == info.slug || key == strings.ToLower(info.display) {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds parses a comma-separated list such as "dijkstra,bfs,astar".
func ParseKinds(list string) ([]Kind, error) {
	parts := strings.Split(list, ",")
	out := make([]Kind, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// New builds a fresh pathfinder of kind k over env.
func New(k Kind, env pathfinder.Environment) (pathfinder.Pathfinder, error) {
	if env == nil {
		return nil, pathfinder.ErrNilEnvironment
	}
	if k == None {
		return pathfinder.None{}, nil
	}
	if k == BFS {
		s, err := bfs.New(env)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	var (
		e   *bestfirst.Engine
		err error
	)
	switch k {
	case Dijkstra:
		e, err = bestfirst.NewDijkstra(env)
	case AStar:
		e, err = bestfirst.NewAStar(env)
	case EuclideanAStar:
		e, err = bestfirst.NewEuclideanAStar(env)
	case WeightedAStar:
		e, err = bestfirst.NewWeightedAStar(env, bestfirst.StrongWeight)
	case TiebreakerAStar:
		e, err = bestfirst.NewTiebreakerAStar(env)
	case Greedy:
		e, err = bestfirst.NewGreedy(env)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// NewAll builds one pathfinder per kind, in order.
func NewAll(kinds []Kind, env pathfinder.Environment) ([]pathfinder.Pathfinder, error) {
	out := make([]pathfinder.Pathfinder, 0, len(kinds))
	for _, k := range kinds {
		pf, err := New(k, env)
		if err != nil {
			return nil, err
		}
		out = append(out, pf)
	}
	return out, nil
}
