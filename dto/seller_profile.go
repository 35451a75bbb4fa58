package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sevahub-simple/models"
)

// SellerProfileInput is the client-supplied part of a seller profile.
// Server-assigned fields (id, userId, verification state, rating, review
// count, timestamps) are never accepted from the client.
type SellerProfileInput struct {
	BusinessName    string  `json:"businessName" binding:"required,min=2"`
	ServiceCategory string  `json:"serviceCategory" binding:"required,service_category"`
	Description     string  `json:"description" binding:"required,min=20"`
	ContactNumber   string  `json:"contactNumber" binding:"required,min=10"`
	Address         string  `json:"address" binding:"required,min=10"`
	ExperienceYears *int    `json:"experienceYears" binding:"required,gte=0,lte=50"`
	ServiceArea     *string `json:"serviceArea"`
	PriceRange      *string `json:"priceRange"`
}

// ToModel builds the profile row for the given owner. Verification state,
// rating and review count are left to their defaults.
func (in SellerProfileInput) ToModel(userID string) models.SellerProfile {
	return models.SellerProfile{
		UserID:          userID,
		BusinessName:    in.BusinessName,
		ServiceCategory: in.ServiceCategory,
		Description:     in.Description,
		ContactNumber:   in.ContactNumber,
		Address:         in.Address,
		ServiceArea:     in.ServiceArea,
		PriceRange:      in.PriceRange,
		ExperienceYears: *in.ExperienceYears,
	}
}

// RegisterValidators installs the custom binding rules and json field naming
// on gin's validator engine. Call once at startup.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("service_category", func(fl validator.FieldLevel) bool {
		return models.IsValidServiceCategory(fl.Field().String())
	})
}

// ValidationMessage turns a binding error into a human-readable aggregation of
// every field error, not just the first.
func ValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid request body"
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), fieldMessage(fe)))
	}
	return strings.Join(messages, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "businessName":
		return "Business name must be at least 2 characters"
	case "serviceCategory":
		return "Please select a valid service category"
	case "description":
		return "Description must be at least 20 characters"
	case "contactNumber":
		return "Please enter a valid contact number"
	case "address":
		return "Address must be at least 10 characters"
	case "experienceYears":
		if fe.Tag() == "gte" {
			return "Experience cannot be negative"
		}
		return "Please enter valid years of experience"
	default:
		return fmt.Sprintf("failed validation on %q", fe.Tag())
	}
}
