package model

import "time"

// Group is the summary record for a clan group.
type Group struct {
	ID           int
	Name         string
	ClanChat     string
	Description  *string
	Homeworld    *int
	Verified     bool
	Patron       bool
	ProfileImage *string
	BannerImage  *string
	Score        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	MemberCount  int
}

// SocialLinks holds a group's optional outbound links.
type SocialLinks struct {
	Website *string
	Discord *string
	Twitter *string
	Youtube *string
	Twitch  *string
}

// GroupDetail is a Group plus its memberships and social links.
type GroupDetail struct {
	Group

	Memberships []GroupMembership
	SocialLinks SocialLinks
}

// Membership ties a player to a group with a role.
type Membership struct {
	PlayerID  int
	GroupID   int
	Role      *GroupRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GroupMembership is a Membership viewed from the group side, with
// the member's player record attached.
type GroupMembership struct {
	Membership

	Player Player
}

// PlayerMembership is a Membership viewed from the player side, with
// the group record attached.
type PlayerMembership struct {
	Membership

	Group Group
}
