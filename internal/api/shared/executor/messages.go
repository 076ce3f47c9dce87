package executor

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// joinNames joins names as "a, b and c"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// inventoryMessage describes an inventory. owner is empty when the viewer looks at their own.
func inventoryMessage(owner string, groups []domain.GroupContents, ungrouped domain.EmojiCounts) string {
	total := ungrouped.Total()
	for _, g := range groups {
		total += g.Emojis.Total()
	}

	if total == 0 {
		if owner == "" {
			return "You have no emojis. 🤔"
		}
		return fmt.Sprintf("%s has no emojis. 🤔", owner)
	}

	var b strings.Builder
	switch {
	case total == 1 && owner == "":
		b.WriteString("You only have ")
	case total == 1:
		fmt.Fprintf(&b, "%s only has ", owner)
	case owner == "":
		fmt.Fprintf(&b, "You have the following %d emojis: ", total)
	default:
		fmt.Fprintf(&b, "%s has the following %d emojis: ", owner, total)
	}

	for _, g := range groups {
		fmt.Fprintf(&b, "[%s]", g.Emojis)
	}
	b.WriteString(ungrouped.String())
	b.WriteByte('.')
	return b.String()
}

func privateInventoryMessage(owner string) string {
	return fmt.Sprintf("%s's inventory is set to private.", owner)
}

func privacyMessage(private bool) string {
	if private {
		return "Your emoji inventory was set to private. Others can no longer view your emoji inventory or find emojis in your inventory, recycling input and outcome will be private, and you won't be notified of new emojis through reactions."
	}
	return "Your emoji inventory was set to public. Others can now view your emoji inventory and find emojis in your inventory, recycling input and outcome will be public, and you will be notified of new emojis through reactions."
}

type namedOwner struct {
	name  string
	count int
}

func whoHasMessage(emoji domain.Emoji, owners []namedOwner) string {
	if len(owners) == 0 {
		return fmt.Sprintf("Nobody with a public inventory has %s.", emoji)
	}

	var b strings.Builder
	if len(owners) == 1 {
		fmt.Fprintf(&b, "The only user with a public inventory with %s is ", emoji)
	} else {
		fmt.Fprintf(&b, "The users with public inventories with %s are ", emoji)
	}
	for i, o := range owners {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(o.name)
		if o.count > 1 {
			fmt.Fprintf(&b, " x%d", o.count)
		}
	}
	b.WriteByte('.')
	return b.String()
}

func grantMessage(name string, granted domain.EmojiCounts) string {
	return fmt.Sprintf("Granted %s to %s.", granted, name)
}

func rewardMessage(emoji domain.Emoji) string {
	return fmt.Sprintf("You received %s for being active.", emoji)
}

func offerCreatedMessage(targetName string, offer domain.TradeOffer) string {
	return fmt.Sprintf("You are now offering %s in return for %s's %s.", offer.Offered, targetName, offer.Requested)
}

func offerWithdrawnMessage(targetName string) string {
	return fmt.Sprintf("Trade offer to %s rescinded.", targetName)
}

func offerRejectedMessage(offererName string) string {
	return fmt.Sprintf("Trade offer from %s rejected.", offererName)
}

type namedOffer struct {
	offer domain.TradeOffer
	// other is the name of the user on the other side
	other string
}

func viewOffersMessage(outgoing, incoming []namedOffer) string {
	var b strings.Builder
	if len(outgoing) > 0 {
		b.WriteString("Outgoing:\n")
		for _, o := range outgoing {
			fmt.Fprintf(&b, "You are offering %s for %s's %s.\n", o.offer.Offered, o.other, o.offer.Requested)
		}
	}
	if len(incoming) > 0 {
		b.WriteString("Incoming:\n")
		for _, o := range incoming {
			fmt.Fprintf(&b, "%s is offering %s for your %s.\n", o.other, o.offer.Offered, o.offer.Requested)
		}
	}
	if b.Len() == 0 {
		return "You have no outgoing or incoming trade offers."
	}
	return b.String()
}

// confirmationMessage is shown to the accepting user, who loses what was requested and gains what was offered
func confirmationMessage(offererName string, offer domain.TradeOffer) string {
	return fmt.Sprintf(
		"You are about to accept the trade offer from %s.\nYou will **lose** the following emoji%s: %s\nYou will **gain** the following emoji%s: %s\nDo you want to proceed?",
		offererName,
		plural(offer.Requested.Total()), offer.Requested,
		plural(offer.Offered.Total()), offer.Offered,
	)
}

func tradeSettledMessage(accepterName, offererName string, offer domain.TradeOffer) string {
	return fmt.Sprintf("%s successfully traded away %s to %s in exchange for %s.", accepterName, offer.Requested, offererName, offer.Offered)
}

const (
	tradeDeclinedMessage = "You have cancelled the trade."
	tradeTimedOutMessage = "The trade confirmation has timed out."
)

func addedToGroupMessage(requested int, group string, added domain.EmojiCounts) string {
	if added.IsEmpty() {
		switch requested {
		case 1:
			return "You do not have that emoji."
		case 2:
			return "You do not have either of those emojis."
		default:
			return "You did not have any of those emojis."
		}
	}

	message := fmt.Sprintf("Added %s to %s.", added, group)
	switch dropped := requested - added.Total(); dropped {
	case 0:
	case 1:
		message += " You did not have the other one."
	default:
		message += fmt.Sprintf(" You did not have the other %d.", dropped)
	}
	return message
}

func removedFromGroupMessage(requested int, named bool, removed domain.EmojiCounts) string {
	if removed.IsEmpty() {
		switch {
		case named && requested == 1:
			return "That emoji is not in that group."
		case named && requested == 2:
			return "Neither of those emojis are in that group."
		case named:
			return "None of those emojis are in that group."
		case requested == 1:
			return "You do not have that emoji."
		case requested == 2:
			return "You do not have either of those emojis."
		default:
			return "You don't have any of those emojis."
		}
	}

	verb := "are"
	if removed.Total() == 1 {
		verb = "is"
	}
	message := fmt.Sprintf("%s %s now ungrouped.", removed, verb)

	skipped := requested - removed.Total()
	switch {
	case skipped == 0:
	case skipped == 1 && named:
		message += " The other one was not in that group."
	case named:
		message += fmt.Sprintf(" The other %d were not in that group.", skipped)
	case skipped == 1:
		message += " You did not have the other one."
	default:
		message += fmt.Sprintf(" You did not have the other %d.", skipped)
	}
	return message
}

func renamedGroupMessage(oldName, newName string) string {
	return fmt.Sprintf("Renamed group %s to %s.", oldName, newName)
}

func noSuchGroupMessage(name string) string {
	return fmt.Sprintf("You have no group called \"%s\".", name)
}

func nameTakenMessage(name string) string {
	return fmt.Sprintf("There is already a group named \"%s\".", name)
}

func listGroupsMessage(listing *domain.GroupListing) string {
	ungrouped := listing.UngroupedCount
	s := plural(ungrouped)

	switch len(listing.Groups) {
	case 0:
		return fmt.Sprintf("You have no groups and %d ungrouped emoji%s.", ungrouped, s)
	case 1:
		g := listing.Groups[0]
		return fmt.Sprintf("Your only group is %s (%d) and you have %d ungrouped emoji%s.", g.Name, g.Count, ungrouped, s)
	}

	parts := make([]string, 0, len(listing.Groups))
	for _, g := range listing.Groups {
		parts = append(parts, fmt.Sprintf("%s (%d)", g.Name, g.Count))
	}
	return fmt.Sprintf("Your groups are %s, and you have %d ungrouped emoji%s.", joinNames(parts), ungrouped, s)
}

func groupContentsMessage(contents *domain.GroupContents) string {
	return fmt.Sprintf("Contents of group %s: %s", contents.Name, contents.Emojis)
}

func ungroupedMessage(emojis domain.EmojiCounts) string {
	if emojis.IsEmpty() {
		return "You have no ungrouped emojis."
	}
	return fmt.Sprintf("Ungrouped emojis: %s", emojis)
}

func repositionMessage(r *domain.RepositionResult) string {
	name := r.Name
	if r.GroupCount == 1 {
		return fmt.Sprintf("%s is your only group. There is nowhere to move it.", name)
	}

	switch r.Kind {
	case domain.MovedToFront:
		return fmt.Sprintf("Moved %s to the start.", name)
	case domain.MovedToBack:
		return fmt.Sprintf("Moved %s to the end.", name)
	case domain.MovedBetween:
		direction := "up"
		if r.RequestedPosition > r.OldPosition {
			direction = "down"
		}
		return fmt.Sprintf("Moved %s %s between %s and %s.", name, direction, r.Neighbours[0], r.Neighbours[1])
	}

	switch {
	case r.RequestedPosition >= r.GroupCount:
		return fmt.Sprintf("That move just puts %s at the end, where it already was.", name)
	case r.OldPosition == r.GroupCount-1:
		return fmt.Sprintf("%s was already at the end.", name)
	case r.RequestedPosition == 0:
		return fmt.Sprintf("%s was already at the start.", name)
	default:
		return fmt.Sprintf("%s was already in that position.", name)
	}
}

// recycleMessage names the user when the result is public
func recycleMessage(name string, public bool, result *domain.RecycleResult) string {
	if public {
		return fmt.Sprintf("%s recycled %s and got %s.", name, result.Consumed, result.Payout)
	}
	return fmt.Sprintf("You recycled %s and got %s.", result.Consumed, result.Payout)
}

// historyMessage describes a log entry from the point of view of the user who asked
func historyMessage(gave, got domain.EmojiCounts, counterparty string, recycle bool) string {
	if recycle {
		return fmt.Sprintf("You recycled %s and got %s.", gave, got)
	}
	return fmt.Sprintf("You traded away %s to %s in exchange for %s.", gave, counterparty, got)
}
