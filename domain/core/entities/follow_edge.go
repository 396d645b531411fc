package entities

import "time"

// FollowEdge is a lightweight record of a directed follow relationship.
// At most one edge exists per ordered (follower, followee) pair.
type FollowEdge struct {
	FollowerID int64
	FolloweeID int64
	Since      time.Time
}
