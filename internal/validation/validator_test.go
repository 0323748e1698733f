// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

package validation

import (
	"strings"
	"sync"
	"testing"
)

// graphRequest mirrors the parameter surface of the graph endpoints.
type graphRequest struct {
	NbIntervals int    `validate:"gte=1,lte=100"`
	GraphType   string `validate:"oneof=bar pie all"`
}

type dendrogramRequest struct {
	Categories string `validate:"required"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := graphRequest{NbIntervals: 7, GraphType: "bar"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() on valid request = %v", err)
	}
}

func TestValidateStruct_InvalidSelector(t *testing.T) {
	t.Parallel()

	req := graphRequest{NbIntervals: 7, GraphType: "sparkline"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() should reject an unknown graph type")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Field() != "GraphType" || errs[0].Tag() != "oneof" {
		t.Errorf("error = field %q tag %q, want GraphType/oneof", errs[0].Field(), errs[0].Tag())
	}
	if !strings.Contains(errs[0].Error(), "must be one of") {
		t.Errorf("message %q should state the allowed values", errs[0].Error())
	}
}

func TestValidateStruct_BoundsViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  graphRequest
		tag  string
	}{
		{name: "below minimum", req: graphRequest{NbIntervals: 0, GraphType: "pie"}, tag: "gte"},
		{name: "above maximum", req: graphRequest{NbIntervals: 500, GraphType: "pie"}, tag: "lte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() should reject out-of-range interval count")
			}
			if got := err.Errors()[0].Tag(); got != tt.tag {
				t.Errorf("failed tag = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := graphRequest{NbIntervals: 0, GraphType: "nope"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("ValidateStruct() should fail")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined message %q should join both errors", err.Error())
	}
}

func TestValidateStruct_RequiredField(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(&dendrogramRequest{})
	if err == nil {
		t.Fatal("ValidateStruct() should reject a missing category list")
	}
	if got := err.Errors()[0].Error(); got != "Categories is required" {
		t.Errorf("message = %q, want %q", got, "Categories is required")
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	req := graphRequest{NbIntervals: 5, GraphType: "chord"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() should fail")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "GraphType" {
		t.Errorf("details.field = %v, want GraphType", apiErr.Details["field"])
	}
	if apiErr.Details["value"] != "chord" {
		t.Errorf("details.value = %v, want chord", apiErr.Details["value"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := graphRequest{NbIntervals: -1, GraphType: "x"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("ValidateStruct() should fail")
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("details.fields has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("details.fields has %d entries, want 2", len(fields))
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				good := graphRequest{NbIntervals: 5, GraphType: "all"}
				if err := ValidateStruct(&good); err != nil {
					t.Errorf("valid request rejected: %v", err)
				}
				bad := graphRequest{NbIntervals: 5, GraphType: "bad"}
				if err := ValidateStruct(&bad); err == nil {
					t.Error("invalid request accepted")
				}
			}
		}(i)
	}
	wg.Wait()
}
