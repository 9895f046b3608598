package dto

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/cabindev/sdnfutsal/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// BatchSelectionMode controls how many of the submitted batch IDs survive
// normalization. Registration keeps only the first selected batch; profile
// updates keep the full selection and reconcile against it.
type BatchSelectionMode int

const (
	SelectFirstBatchOnly BatchSelectionMode = iota
	SelectAllBatches
)

// CoachRegistrationRequest is the typed form of a coach registration or update
// submission. Produced by NormalizeRegistrationForm; downstream code never sees
// the wire-level form shapes.
type CoachRegistrationRequest struct {
	// TargetUserID is set when an administrator registers on behalf of another
	// user. Nil means the acting user registers themselves.
	TargetUserID *int64

	Gender                  string `validate:"required"`
	Age                     int
	NationalIDNumber        string `validate:"required"`
	Address                 string `validate:"required"`
	PhoneNumber             string `validate:"required"`
	Religion                string `validate:"required"`
	FoodPreference          string `validate:"required"`
	CoachStatus             string `validate:"required"`
	ShirtSize               string `validate:"required"`
	District                string `validate:"required"`
	County                  string `validate:"required"`
	Province                string `validate:"required"`
	TeamName                *string
	Nickname                *string
	LineID                  *string
	HasMedicalCondition     bool
	MedicalConditionDetail  *string
	YearsOfExperience       int
	PriorParticipationCount int
	NeedsAccommodation      bool
	Expectations            *string
	Region                  *string
	SelectedBatchIDs        []int64
}

var registrationValidate = validator.New()

// formFieldNames maps struct fields to their wire-level form keys so that
// validation failures report the names the caller actually submitted.
var formFieldNames = map[string]string{
	"Gender":           "gender",
	"Age":              "age",
	"NationalIDNumber": "nationalId",
	"Address":          "address",
	"PhoneNumber":      "phone",
	"Religion":         "religion",
	"FoodPreference":   "foodPreference",
	"CoachStatus":      "coachStatus",
	"ShirtSize":        "shirtSize",
	"District":         "district",
	"County":           "county",
	"Province":         "province",
}

// NormalizeRegistrationForm coerces an untyped form submission into a
// CoachRegistrationRequest. Required fields that are missing or malformed are
// collected and reported together as a single validation error.
func NormalizeRegistrationForm(form url.Values, mode BatchSelectionMode) (*CoachRegistrationRequest, error) {
	req := &CoachRegistrationRequest{
		Gender:                  formString(form, "gender"),
		NationalIDNumber:        formString(form, "nationalId"),
		Address:                 formString(form, "address"),
		PhoneNumber:             formString(form, "phone"),
		Religion:                formString(form, "religion"),
		FoodPreference:          formString(form, "foodPreference"),
		CoachStatus:             formString(form, "coachStatus"),
		ShirtSize:               formString(form, "shirtSize"),
		District:                formString(form, "district"),
		County:                  formString(form, "county"),
		Province:                formString(form, "province"),
		TeamName:                formOptional(form, "teamName"),
		Nickname:                formOptional(form, "nickname"),
		LineID:                  formOptional(form, "lineId"),
		MedicalConditionDetail:  formOptional(form, "medicalConditionDetail"),
		Expectations:            formOptional(form, "expectations"),
		Region:                  formOptional(form, "zone"),
		HasMedicalCondition:     formBool(form, "hasMedicalCondition"),
		NeedsAccommodation:      formBool(form, "needsAccommodation"),
		YearsOfExperience:       formInt(form, "yearsOfExperience"),
		PriorParticipationCount: formInt(form, "priorParticipationCount"),
	}

	// A non-positive or non-numeric age is left as zero and caught below.
	req.Age = formInt(form, "age")

	if raw := formString(form, "userId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.TargetUserID = &id
		}
	}

	ids := ParseBatchSelection(form["selectedBatchIds"])
	if mode == SelectFirstBatchOnly && len(ids) > 1 {
		ids = ids[:1]
	}
	req.SelectedBatchIDs = ids

	var fields []string
	if err := registrationValidate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		for _, fe := range verrs {
			name, known := formFieldNames[fe.StructField()]
			if !known {
				name = fe.StructField()
			}
			fields = append(fields, name)
		}
	}

	// A positive age is required when registering; a profile update keeps
	// whatever the row already holds when the field is absent.
	if mode == SelectFirstBatchOnly && req.Age <= 0 {
		fields = append(fields, "age")
	}

	if len(fields) > 0 {
		sort.Strings(fields)
		return nil, fmt.Errorf("%w: missing or invalid fields: %s", apperrors.ErrValidation, strings.Join(fields, ", "))
	}

	return req, nil
}

// ParseBatchSelection normalizes the accepted wire shapes for batch selection
// into an ordered, deduplicated ID list. Shapes are tried in fixed priority
// order: a repeated-key array, a single comma-delimited string, a single
// semicolon-delimited string. Non-numeric entries are dropped without error.
func ParseBatchSelection(values []string) []int64 {
	var tokens []string
	switch {
	case len(values) > 1:
		tokens = values
	case len(values) == 1 && strings.Contains(values[0], ","):
		tokens = strings.Split(values[0], ",")
	case len(values) == 1 && strings.Contains(values[0], ";"):
		tokens = strings.Split(values[0], ";")
	case len(values) == 1:
		tokens = values
	default:
		return nil
	}

	seen := make(map[int64]struct{}, len(tokens))
	ids := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func formString(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

func formOptional(form url.Values, key string) *string {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func formBool(form url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(form.Get(key))) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}

func formInt(form url.Values, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(key)))
	if err != nil {
		return 0
	}
	return n
}
