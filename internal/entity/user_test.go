package entity

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		input    string
		expected Role
		err      error
	}{
		{input: "super admin", expected: RoleSuperAdmin},
		{input: " Admin ", expected: RoleAdmin},
		{input: "customer", expected: RoleCustomer},
		{input: "", err: InvalidRoleError},
		{input: "owner", err: InvalidRoleError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := ParseRole(tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Expected error %v, got %v", tc.err, err)
			}
			if role != tc.expected {
				t.Errorf("Expected role %q, got %q", tc.expected, role)
			}
		})
	}
}

func TestTestimonialStars(t *testing.T) {
	for rating, expected := range map[int]int{-1: 1, 0: 1, 1: 1, 3: 3, 5: 5, 9: 5} {
		got := Testimonial{Rating: rating}.Stars()
		if got != expected {
			t.Errorf("Rating %d: expected %d stars, got %d", rating, expected, got)
		}
	}
}
