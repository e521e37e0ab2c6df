package graph

import (
	"fmt"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/entities"
	"car-advisor/internal/infra/logger"
)

// Graph is the immutable interview graph. Built once at startup, validated,
// then shared read-only by every session.
type Graph struct {
	nodes             map[string]*entities.QuestionNode
	order             []string
	startID           string
	terminalID        string
	completionTrigger string
	totalQuestions    int
}

func New(nodes []*entities.QuestionNode, startID, completionTrigger string, totalQuestions int) *Graph {
	g := &Graph{
		nodes:             make(map[string]*entities.QuestionNode, len(nodes)),
		order:             make([]string, 0, len(nodes)),
		startID:           startID,
		completionTrigger: completionTrigger,
		totalQuestions:    totalQuestions,
	}
	for _, n := range nodes {
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
		if n.Route.Resolve == nil && n.Route.Next == n.ID {
			g.terminalID = n.ID
		}
	}
	return g
}

func (g *Graph) Start() *entities.QuestionNode {
	return g.nodes[g.startID]
}

func (g *Graph) Node(id string) (*entities.QuestionNode, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNodeNotFound, id)
	}
	return node, nil
}

// Nodes returns every node in declaration order.
func (g *Graph) Nodes() []*entities.QuestionNode {
	out := make([]*entities.QuestionNode, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

func (g *Graph) TotalQuestions() int { return g.totalQuestions }

// CompletionTrigger is the last real question; answering it completes the
// interview regardless of how many turns came before.
func (g *Graph) CompletionTrigger() string { return g.completionTrigger }

func (g *Graph) TerminalID() string { return g.terminalID }

// ResolveNext applies the node's routing rule. Constant rules are returned
// unchanged; computed rules are invoked with the raw answer and the profile
// accumulated so far. Deterministic for a fixed (node, answer, profile).
func (g *Graph) ResolveNext(node *entities.QuestionNode, answer string, profile *entities.UserProfile) string {
	if node.Route.Resolve != nil {
		return node.Route.Resolve(answer, profile)
	}
	return node.Route.Next
}

// Validate checks the graph invariants before the server accepts traffic:
// the start node and completion trigger exist, every constant target and
// every enumerated computed target resolves to a real node, and exactly one
// terminal node routes to itself. A mismatch between the longest interview
// path and the configured question total is reported as a warning, since
// the terminal node stays authoritative and the total is a safety bound.
func (g *Graph) Validate(log *logger.Logger) error {
	if _, ok := g.nodes[g.startID]; !ok {
		return fmt.Errorf("%w: start node %q missing", apperrors.ErrGraphConfiguration, g.startID)
	}
	if _, ok := g.nodes[g.completionTrigger]; !ok {
		return fmt.Errorf("%w: completion trigger %q missing", apperrors.ErrGraphConfiguration, g.completionTrigger)
	}

	terminals := 0
	for _, id := range g.order {
		node := g.nodes[id]
		if node.Route.Resolve != nil {
			if len(node.Route.Targets) == 0 {
				return fmt.Errorf("%w: node %q has a computed rule with no declared targets", apperrors.ErrGraphConfiguration, id)
			}
			for _, target := range node.Route.Targets {
				if _, ok := g.nodes[target]; !ok {
					return fmt.Errorf("%w: node %q routes to unknown node %q", apperrors.ErrGraphConfiguration, id, target)
				}
			}
			continue
		}
		if _, ok := g.nodes[node.Route.Next]; !ok {
			return fmt.Errorf("%w: node %q routes to unknown node %q", apperrors.ErrGraphConfiguration, id, node.Route.Next)
		}
		if node.Route.Next == id {
			terminals++
		}
	}
	if terminals != 1 {
		return fmt.Errorf("%w: expected exactly one terminal self-loop node, found %d", apperrors.ErrGraphConfiguration, terminals)
	}

	if depth := g.longestPath(); depth != g.totalQuestions && log != nil {
		log.Warn(fmt.Sprintf("question graph depth %d diverges from configured total %d; terminal node stays authoritative", depth, g.totalQuestions))
	}
	return nil
}

// longestPath walks every edge from the start node and returns the largest
// number of questions a session can answer before landing on the terminal.
func (g *Graph) longestPath() int {
	visiting := make(map[string]bool)
	var walk func(id string) int
	walk = func(id string) int {
		node := g.nodes[id]
		if node == nil || id == g.terminalID || visiting[id] {
			return 0
		}
		visiting[id] = true
		defer delete(visiting, id)

		targets := node.Route.Targets
		if node.Route.Resolve == nil {
			targets = []string{node.Route.Next}
		}
		max := 0
		for _, target := range targets {
			if d := walk(target); d > max {
				max = d
			}
		}
		return max + 1
	}
	return walk(g.startID)
}
