package serde

import (
	"github.com/osrstools/womgo/model"
)

// Group decodes a single group summary body.
func (d *Deserializer) Group(body []byte) (model.Group, error) {
	return decodeObject("Group", body, d.group)
}

// Groups decodes a page of group summaries.
func (d *Deserializer) Groups(body []byte) ([]model.Group, error) {
	return decodeList("Group list", body, d.group)
}

// GroupDetail decodes a group detail body: the base group widened
// with memberships and social links from the same node.
func (d *Deserializer) GroupDetail(body []byte) (model.GroupDetail, error) {
	return decodeObject("GroupDetail", body, d.groupDetail)
}

func (d *Deserializer) group(n node) (model.Group, error) {
	var (
		g   model.Group
		err error
	)

	if g.ID, err = integer(n, "id"); err != nil {
		return g, err
	}

	if g.Name, err = str(n, "name"); err != nil {
		return g, err
	}

	if g.ClanChat, err = str(n, "clanChat"); err != nil {
		return g, err
	}

	if g.Description, err = strMaybe(n, "description"); err != nil {
		return g, err
	}

	if g.Homeworld, err = integerMaybe(n, "homeworld"); err != nil {
		return g, err
	}

	if g.Verified, err = boolean(n, "verified"); err != nil {
		return g, err
	}

	if g.Patron, err = boolean(n, "patron"); err != nil {
		return g, err
	}

	if g.ProfileImage, err = strMaybe(n, "profileImage"); err != nil {
		return g, err
	}

	if g.BannerImage, err = strMaybe(n, "bannerImage"); err != nil {
		return g, err
	}

	if g.Score, err = integer(n, "score"); err != nil {
		return g, err
	}

	if g.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return g, err
	}

	if g.UpdatedAt, err = timestamp(n, "updatedAt"); err != nil {
		return g, err
	}

	g.MemberCount, err = integer(n, "memberCount")

	return g, err
}

func (d *Deserializer) groupDetail(n node) (model.GroupDetail, error) {
	var (
		detail model.GroupDetail
		err    error
	)

	if detail.Group, err = d.group(n); err != nil {
		return detail, err
	}

	membershipNodes, err := children(n, "memberships")
	if err != nil {
		return detail, err
	}

	detail.Memberships = make([]model.GroupMembership, 0, len(membershipNodes))
	for _, membershipNode := range membershipNodes {
		membership, err := d.groupMembership(membershipNode)
		if err != nil {
			return detail, err
		}

		detail.Memberships = append(detail.Memberships, membership)
	}

	linksNode, err := childMaybe(n, "socialLinks")
	if err != nil {
		return detail, err
	}

	if linksNode != nil {
		if detail.SocialLinks, err = d.socialLinks(linksNode); err != nil {
			return detail, err
		}
	}

	return detail, nil
}

func (d *Deserializer) socialLinks(n node) (model.SocialLinks, error) {
	var (
		links model.SocialLinks
		err   error
	)

	if links.Website, err = strMaybe(n, "website"); err != nil {
		return links, err
	}

	if links.Discord, err = strMaybe(n, "discord"); err != nil {
		return links, err
	}

	if links.Twitter, err = strMaybe(n, "twitter"); err != nil {
		return links, err
	}

	if links.Youtube, err = strMaybe(n, "youtube"); err != nil {
		return links, err
	}

	links.Twitch, err = strMaybe(n, "twitch")

	return links, err
}

func (d *Deserializer) membership(n node) (model.Membership, error) {
	var (
		m   model.Membership
		err error
	)

	if m.PlayerID, err = integer(n, "playerId"); err != nil {
		return m, err
	}

	if m.GroupID, err = integer(n, "groupId"); err != nil {
		return m, err
	}

	if m.Role, err = enumMaybe(n, "role", model.ParseGroupRole); err != nil {
		return m, err
	}

	if m.CreatedAt, err = timestamp(n, "createdAt"); err != nil {
		return m, err
	}

	m.UpdatedAt, err = timestamp(n, "updatedAt")

	return m, err
}

func (d *Deserializer) groupMembership(n node) (model.GroupMembership, error) {
	var (
		gm  model.GroupMembership
		err error
	)

	if gm.Membership, err = d.membership(n); err != nil {
		return gm, err
	}

	playerNode, err := child(n, "player")
	if err != nil {
		return gm, err
	}

	gm.Player, err = d.player(playerNode)

	return gm, err
}

func (d *Deserializer) playerMembership(n node) (model.PlayerMembership, error) {
	var (
		pm  model.PlayerMembership
		err error
	)

	if pm.Membership, err = d.membership(n); err != nil {
		return pm, err
	}

	groupNode, err := child(n, "group")
	if err != nil {
		return pm, err
	}

	pm.Group, err = d.group(groupNode)

	return pm, err
}
