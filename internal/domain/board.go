package domain

import "time"

type Board struct {
	ID        int64
	Title     string
	OwnerID   int64
	Owner     *User
	Members   []User
	Tasks     []*Task
	Stats     BoardStats
	CreatedAt time.Time
}

// BoardStats are counted over live rows on every read.
type BoardStats struct {
	MemberCount        int
	TicketCount        int
	TasksToDoCount     int
	TasksHighPrioCount int
}

func (b *Board) IsMember(userID int64) bool {
	for _, m := range b.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

func (b *Board) IsOwner(userID int64) bool {
	return b.OwnerID == userID
}

func (b *Board) MemberIDs() []int64 {
	ids := make([]int64, 0, len(b.Members))
	for _, m := range b.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// BoardPatch holds the mutable board fields; nil means untouched.
type BoardPatch struct {
	Title     *string
	MemberIDs *[]int64
}

// OwnerRemovalPolicy decides what happens when an update drops the owner from members.
type OwnerRemovalPolicy string

const (
	OwnerRemovalAllow  OwnerRemovalPolicy = "allow"
	OwnerRemovalReject OwnerRemovalPolicy = "reject"
	OwnerRemovalRetain OwnerRemovalPolicy = "retain"
)

func ParseOwnerRemovalPolicy(s string) OwnerRemovalPolicy {
	switch OwnerRemovalPolicy(s) {
	case OwnerRemovalReject, OwnerRemovalRetain:
		return OwnerRemovalPolicy(s)
	default:
		return OwnerRemovalAllow
	}
}

// DedupeIDs keeps the first occurrence of every id, preserving order.
func DedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
