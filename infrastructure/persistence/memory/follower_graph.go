package memory

import (
	"time"

	"go.uber.org/zap"

	"github.com/Yunazhang430/Witter/domain/core/entities"
	"github.com/Yunazhang430/Witter/pkg/errors"
	"github.com/Yunazhang430/Witter/pkg/sorting"
)

// graphNode holds one side of an account's follow relationships together
// with a cached edge count.
type graphNode struct {
	edges []entities.FollowEdge
	count int
}

func (n *graphNode) add(edge entities.FollowEdge) {
	n.edges = append(n.edges, edge)
	n.count++
}

// FollowerGraph is a bidirectional follow graph kept as two mirrored
// adjacency maps. The followers map records, per account, who follows it;
// the following map records, per account, whom it follows. Every edge is
// written to both sides in one step, so the two views never diverge.
//
// An account gains a node on a side only when its first edge on that side
// arrives. Queries against a side an account has never appeared on report an
// error rather than an empty result: not-found for the listing queries,
// precondition for the membership and count queries.
type FollowerGraph struct {
	followers map[int64]*graphNode
	following map[int64]*graphNode
	logger    *zap.Logger
}

// NewFollowerGraph creates an empty follow graph. A nil logger is replaced
// with a no-op logger.
func NewFollowerGraph(logger *zap.Logger) *FollowerGraph {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FollowerGraph{
		followers: make(map[int64]*graphNode),
		following: make(map[int64]*graphNode),
		logger:    logger,
	}
}

// AddFollower records that followerID follows accountID as of the given
// instant, creating either endpoint's node on demand. It fails with a
// duplicate error when the relationship already exists. Self-edges are
// ordinary edges; the store imposes no rule the edge contract doesn't.
func (g *FollowerGraph) AddFollower(accountID, followerID int64, since time.Time) error {
	target, ok := g.followers[accountID]
	if !ok {
		target = &graphNode{}
		g.followers[accountID] = target
	}
	for _, e := range target.edges {
		if e.FollowerID == followerID {
			g.logger.Debug("rejected duplicate follow edge",
				zap.Int64("account_id", accountID),
				zap.Int64("follower_id", followerID))
			return errors.NewDuplicateEdgeError(followerID, accountID)
		}
	}

	source, ok := g.following[followerID]
	if !ok {
		source = &graphNode{}
		g.following[followerID] = source
	}

	edge := entities.FollowEdge{FollowerID: followerID, FolloweeID: accountID, Since: since}
	target.add(edge)
	source.add(edge)
	g.logger.Debug("follow edge added",
		zap.Int64("account_id", accountID),
		zap.Int64("follower_id", followerID),
		zap.Time("since", since))
	return nil
}

// Followers returns the ids of the accounts following accountID, most
// recent follow first. It fails with a not-found error when the account has
// never gained a follower.
func (g *FollowerGraph) Followers(accountID int64) ([]int64, error) {
	node, ok := g.followers[accountID]
	if !ok {
		return nil, errors.NewNotFoundError("followers record", accountID)
	}
	return peersByRecency(node, func(e entities.FollowEdge) int64 { return e.FollowerID }), nil
}

// Following returns the ids of the accounts that accountID follows, most
// recent follow first. It fails with a not-found error when the account has
// never followed anyone.
func (g *FollowerGraph) Following(accountID int64) ([]int64, error) {
	node, ok := g.following[accountID]
	if !ok {
		return nil, errors.NewNotFoundError("following record", accountID)
	}
	return peersByRecency(node, func(e entities.FollowEdge) int64 { return e.FolloweeID }), nil
}

// IsFollower reports whether candidateID follows accountID. It fails with a
// precondition error when accountID has never gained a follower.
func (g *FollowerGraph) IsFollower(candidateID, accountID int64) (bool, error) {
	node, ok := g.followers[accountID]
	if !ok {
		return false, errors.NewPreconditionError("account has no followers record").
			WithDetail("account_id", accountID)
	}
	for _, e := range node.edges {
		if e.FollowerID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

// FollowerCount returns the cached number of followers of accountID. It
// fails with a precondition error when the account has never gained a
// follower.
func (g *FollowerGraph) FollowerCount(accountID int64) (int, error) {
	node, ok := g.followers[accountID]
	if !ok {
		return 0, errors.NewPreconditionError("account has no followers record").
			WithDetail("account_id", accountID)
	}
	return node.count, nil
}

// MutualFollowers returns the ids of the accounts following both a and b,
// ordered by the instant each started following b, newest first. When
// either endpoint has never gained a follower the result is empty.
func (g *FollowerGraph) MutualFollowers(a, b int64) []int64 {
	return mutualPeers(g.followers, a, b,
		func(e entities.FollowEdge) int64 { return e.FollowerID })
}

// MutualFollowing returns the ids of the accounts that both a and b follow,
// ordered by the instant b started following each, newest first. When
// either endpoint has never followed anyone the result is empty.
func (g *FollowerGraph) MutualFollowing(a, b int64) []int64 {
	return mutualPeers(g.following, a, b,
		func(e entities.FollowEdge) int64 { return e.FolloweeID })
}

// TopUsers returns the id of every account that has gained at least one
// follower, sorted ascending by id value. Despite the name, the result is
// not ranked by follower count.
func (g *FollowerGraph) TopUsers() []int64 {
	ids := make([]int64, 0, len(g.followers))
	for id := range g.followers {
		ids = append(ids, id)
	}
	// Complement instead of negation: -math.MinInt64 overflows, and the
	// store accepts any int64 id.
	sorting.SortByKeyDesc(ids, func(id int64) int64 { return ^id })
	return ids
}

func peersByRecency(node *graphNode, peer func(entities.FollowEdge) int64) []int64 {
	edges := make([]entities.FollowEdge, len(node.edges))
	copy(edges, node.edges)
	sorting.SortByKeyDesc(edges, func(e entities.FollowEdge) int64 { return e.Since.UnixNano() })
	ids := make([]int64, len(edges))
	for i, e := range edges {
		ids[i] = peer(e)
	}
	return ids
}

type mutualPeer struct {
	id    int64
	since time.Time
}

func mutualPeers(side map[int64]*graphNode, a, b int64, peer func(entities.FollowEdge) int64) []int64 {
	na, ok := side[a]
	if !ok {
		return nil
	}
	nb, ok := side[b]
	if !ok {
		return nil
	}

	seenA := make(map[int64]struct{}, len(na.edges))
	for _, e := range na.edges {
		seenA[peer(e)] = struct{}{}
	}

	var shared []mutualPeer
	for _, e := range nb.edges {
		id := peer(e)
		if _, ok := seenA[id]; ok {
			shared = append(shared, mutualPeer{id: id, since: e.Since})
		}
	}

	sorting.SortByKeyDesc(shared, func(p mutualPeer) int64 { return p.since.UnixNano() })
	ids := make([]int64, len(shared))
	for i, p := range shared {
		ids[i] = p.id
	}
	return ids
}
