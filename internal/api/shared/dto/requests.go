package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-emoji-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-emoji-ledger/internal/domain"
)

// validateEmojiInput checks a raw emoji text field before it is parsed against the catalog
func validateEmojiInput(field, input string) error {
	if strings.TrimSpace(input) == "" {
		return apierrors.NewValidationError(fmt.Sprintf("%s is required", field))
	}
	if utf8.RuneCountInString(input) > constants.MAX_EMOJI_INPUT_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("%s must be at most %d characters", field, constants.MAX_EMOJI_INPUT_LENGTH))
	}
	return nil
}

// GrantRequest represents the request body for granting emojis to a user
type GrantRequest struct {
	Emojis string `json:"emojis"`
}

// Validate validates the request body
func (r *GrantRequest) Validate() error {
	return validateEmojiInput("emojis", r.Emojis)
}

// CallerRequest carries the roles the gateway saw on the calling user.
// A nil Roles makes the ledger look the roles up in the member directory.
type CallerRequest struct {
	Roles []string `json:"roles,omitempty"`
}

// CreateOfferRequest represents the request body for offering a trade
type CreateOfferRequest struct {
	TargetID domain.UserID `json:"target_id,string"`
	Offer    string        `json:"offer"`
	Request  string        `json:"request"`
}

// Validate validates the request body
func (r *CreateOfferRequest) Validate() error {
	if r.TargetID == 0 {
		return apierrors.NewValidationError("target_id is required")
	}
	if err := validateEmojiInput("offer", r.Offer); err != nil {
		return err
	}
	return validateEmojiInput("request", r.Request)
}

// AddToGroupRequest represents the request body for filing emojis under a group
type AddToGroupRequest struct {
	Group  string `json:"group"`
	Emojis string `json:"emojis"`
}

// Validate validates the request body
func (r *AddToGroupRequest) Validate() error {
	if _, err := domain.NormalizeGroupName(r.Group); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("group must be 1 to %d characters", domain.MaxGroupNameLength))
	}
	return validateEmojiInput("emojis", r.Emojis)
}

// RemoveFromGroupRequest represents the request body for ungrouping emojis.
// Without a group, the emojis are taken from whichever groups hold them.
type RemoveFromGroupRequest struct {
	Group  *string `json:"group,omitempty"`
	Emojis string  `json:"emojis"`
}

// Validate validates the request body
func (r *RemoveFromGroupRequest) Validate() error {
	if r.Group != nil {
		if _, err := domain.NormalizeGroupName(*r.Group); err != nil {
			return apierrors.NewValidationError(fmt.Sprintf("group must be 1 to %d characters", domain.MaxGroupNameLength))
		}
	}
	return validateEmojiInput("emojis", r.Emojis)
}

// RenameGroupRequest represents the request body for renaming a group
type RenameGroupRequest struct {
	NewName string `json:"new_name"`
}

// Validate validates the request body
func (r *RenameGroupRequest) Validate() error {
	if _, err := domain.NormalizeGroupName(r.NewName); err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("new_name must be 1 to %d characters", domain.MaxGroupNameLength))
	}
	return nil
}

// RepositionGroupRequest represents the request body for moving a group
type RepositionGroupRequest struct {
	// Position is 0-based; values past the end move the group to the end
	Position *int `json:"position"`
}

// Validate validates the request body
func (r *RepositionGroupRequest) Validate() error {
	if r.Position == nil {
		return apierrors.NewValidationError("position is required")
	}
	if *r.Position < 0 {
		return apierrors.NewValidationError("position must not be negative")
	}
	return nil
}

// RecycleRequest represents the request body for recycling emojis
type RecycleRequest struct {
	Emojis string `json:"emojis"`
}

// Validate validates the request body
func (r *RecycleRequest) Validate() error {
	return validateEmojiInput("emojis", r.Emojis)
}

// AnswerConfirmationRequest represents the answer to a trade confirmation prompt
type AnswerConfirmationRequest struct {
	UserID domain.UserID `json:"user_id,string"`
	Choice string        `json:"choice"`
}

// Validate validates the request body
func (r *AnswerConfirmationRequest) Validate() error {
	if r.UserID == 0 {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.Choice == "" {
		return apierrors.NewValidationError("choice is required")
	}
	return nil
}

// UpsertMemberRequest mirrors a chat member's names and roles into the directory
type UpsertMemberRequest struct {
	DisplayName *string  `json:"display_name,omitempty"`
	Nickname    *string  `json:"nickname,omitempty"`
	Roles       []string `json:"roles"`
}

// Validate validates the request body
func (r *UpsertMemberRequest) Validate() error {
	if len(r.Roles) > constants.MAX_MEMBER_ROLES {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d roles allowed", constants.MAX_MEMBER_ROLES))
	}
	for _, role := range r.Roles {
		if strings.TrimSpace(role) == "" {
			return apierrors.NewValidationError("roles must not contain blank entries")
		}
	}
	return nil
}
