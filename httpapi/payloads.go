package httpapi

import (
	"errors"
	"sort"

	"github.com/Rajat-Bansal3/Logit-Gym/auth"
	"github.com/Rajat-Bansal3/Logit-Gym/gym"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/nyaruka/phonenumbers"
)

// phoneRegion is the default region for owner contact numbers without a
// country prefix.
const phoneRegion = "IN"

// TextCodeValidationFailed tags payload validation failures.
const TextCodeValidationFailed = "VALIDATION_FAILED"

// RegisterPayload is the registration request body.
type RegisterPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Normalize lower-cases and trims the email. Normalization happens once,
// here at the validation boundary.
func (p *RegisterPayload) Normalize() {
	p.Email = auth.NormalizeEmail(p.Email)
}

// Validate will validate the payload
func (p RegisterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 100)),
		validation.Field(&p.Role, validation.In(auth.RoleOwner, auth.RoleTrainer, auth.RoleMember)),
	)
}

// LoginPayload is the login request body.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *LoginPayload) Normalize() {
	p.Email = auth.NormalizeEmail(p.Email)
}

// Validate will validate the payload
func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 100)),
	)
}

// GymProfilePayload is the nested profile body on gym create/update.
type GymProfilePayload struct {
	Timing            string   `json:"timing"`
	OpenDays          []string `json:"openDays"`
	Fees              float64  `json:"fees"`
	GenderAllowed     string   `json:"genderAllowed"`
	OwnerName         string   `json:"ownerName"`
	OwnerContact      string   `json:"ownerContact"`
	FitnessProfession string   `json:"fitnessProfession"`
	Amenities         []string `json:"amenities"`
	Images            []string `json:"images"`
	ReferralOffer     string   `json:"referralOffer"`
}

// Validate will validate the payload
func (p GymProfilePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.OwnerContact, validation.By(validPhone)),
		validation.Field(&p.Fees, validation.Min(0.0)),
	)
}

func (p *GymProfilePayload) toModel() *gym.Profile {
	if p == nil {
		return nil
	}
	return &gym.Profile{
		Timing:            p.Timing,
		OpenDays:          p.OpenDays,
		Fees:              p.Fees,
		GenderAllowed:     p.GenderAllowed,
		OwnerName:         p.OwnerName,
		OwnerContact:      p.OwnerContact,
		FitnessProfession: p.FitnessProfession,
		Amenities:         p.Amenities,
		Images:            p.Images,
		ReferralOffer:     p.ReferralOffer,
	}
}

// CreateGymPayload is the gym creation request body.
type CreateGymPayload struct {
	Name    string             `json:"name"`
	Address string             `json:"address"`
	Profile *GymProfilePayload `json:"profile"`
}

// Validate will validate the payload
func (p CreateGymPayload) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Address, validation.Required, validation.Length(1, 500)),
	); err != nil {
		return err
	}

	if p.Profile != nil {
		return p.Profile.Validate()
	}
	return nil
}

// UpdateGymPayload is the partial gym update request body.
type UpdateGymPayload struct {
	Name    *string            `json:"name"`
	Address *string            `json:"address"`
	Profile *GymProfilePayload `json:"profile"`
}

// Validate will validate the payload
func (p UpdateGymPayload) Validate() error {
	if p.Name != nil {
		if err := validation.Validate(*p.Name, validation.Required, validation.Length(1, 200)); err != nil {
			return validation.Errors{"name": err}
		}
	}
	if p.Address != nil {
		if err := validation.Validate(*p.Address, validation.Required, validation.Length(1, 500)); err != nil {
			return validation.Errors{"address": err}
		}
	}
	if p.Profile != nil {
		return p.Profile.Validate()
	}
	return nil
}

// validPhone accepts an empty value; a present owner contact must parse
// as a valid phone number.
func validPhone(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	num, err := phonenumbers.Parse(s, phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return errors.New("must be a valid phone number")
	}
	return nil
}

// asValidationError converts an ozzo validation result into the
// structured error the handler chain renders with per-field messages.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}

	fields := []FieldError{}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		keys := make([]string, 0, len(verrs))
		for k := range verrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fields = append(fields, FieldError{Field: k, Message: verrs[k].Error()})
		}
	}

	return goerrors.New("validation failed", goerrors.CategoryValidation).
		WithTextCode(TextCodeValidationFailed).
		WithCode(goerrors.CodeBadRequest).
		WithMetadata(map[string]any{"fields": fields})
}
