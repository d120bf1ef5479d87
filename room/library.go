package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NamedSize is an entry of the size pool rooms draw their footprint from
type NamedSize struct {
	Name   string `json:"name" validate:"required"`
	Width  int    `json:"width" validate:"gt=0"`
	Height int    `json:"height" validate:"gt=0"`
}

// Size returns the footprint of the entry
func (n NamedSize) Size() Size {
	return Size{Width: n.Width, Height: n.Height}
}

// ChoreRoom is a normal room together with the chore that has to be done in it
type ChoreRoom struct {
	Name  string `json:"name" validate:"required"`
	Chore string `json:"chore" validate:"required"`
}

// Library holds the pools a house is generated from
type Library struct {
	Name         string      `json:"name" validate:"required"`
	Description  string      `json:"description"`
	StartingRoom string      `json:"starting_room" validate:"required"`
	FinalRoom    string      `json:"final_room" validate:"required"`
	Sizes        []NamedSize `json:"sizes" validate:"required,min=1,unique=Name,dive"`
	ChoreRooms   []ChoreRoom `json:"chore_rooms" validate:"required,min=1,unique=Name,dive"`
}

// Validate checks the library against its struct constraints
func (l *Library) Validate() error {
	if err := validate.Struct(l); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return fmt.Errorf("library validation failed: %w", err)
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), validationMessage(fe)))
		}
		return fmt.Errorf("library %q is invalid: %s", l.Name, strings.Join(msgs, "; "))
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "unique":
		return fmt.Sprintf("must have unique %s values", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// MaxRooms is the largest house the library can produce: every chore room plus
// the starting and final rooms
func (l *Library) MaxRooms() int {
	return len(l.ChoreRooms) + 2
}

// ParseLibrary decodes and validates a library from JSON
func ParseLibrary(data []byte) (*Library, error) {
	var library Library
	if err := json.Unmarshal(data, &library); err != nil {
		return nil, fmt.Errorf("failed to parse room library JSON: %w", err)
	}
	if err := library.Validate(); err != nil {
		return nil, err
	}
	return &library, nil
}

// LoadLibrary loads a room library from a JSON file
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room library file: %w", err)
	}
	library, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return library, nil
}

// DefaultLibrary returns the built-in house
func DefaultLibrary() *Library {
	return &Library{
		Name:         "house",
		Description:  "Do all the chores so that you don't have to sleep on the couch",
		StartingRoom: "man cave",
		FinalRoom:    "Master bedroom",
		Sizes: []NamedSize{
			{Name: "small_room", Width: 1, Height: 1},
			{Name: "tall_room", Width: 1, Height: 2},
			{Name: "wide_room", Width: 2, Height: 1},
			{Name: "big_room", Width: 2, Height: 2},
		},
		ChoreRooms: []ChoreRoom{
			{Name: "kitchen", Chore: "go empty the dishwasher"},
			{Name: "dinning room", Chore: "go clean the table"},
			{Name: "living room", Chore: "go vacuum the carpet"},
			{Name: "bathroom", Chore: "go wash the bathtub"},
			{Name: "guestroom", Chore: "go make the bed"},
			{Name: "Garage", Chore: "go organize the tools"},
			{Name: "study", Chore: "go arrange the books"},
			{Name: "office", Chore: "go sharpen the pencils"},
		},
	}
}
