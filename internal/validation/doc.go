// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

/*
Package validation provides struct validation using go-playground/validator v10.

A thread-safe singleton wraps the validator so struct metadata is parsed
once. Validation failures translate to human-readable messages and convert
into the API's VALIDATION_ERROR envelope. Graph endpoints validate their
query parameters strictly: an unknown graph_type or output_type is rejected
with 400, never silently defaulted.

# Quick Start

	type SizeGraphRequest struct {
	    NbIntervals int    `validate:"gte=1,lte=100"`
	    GraphType   string `validate:"oneof=bar pie all"`
	}

	func handler(w http.ResponseWriter, r *http.Request) {
	    req := parseSizeGraphRequest(r)
	    if verr := validation.ValidateStruct(&req); verr != nil {
	        apiErr := verr.ToAPIError()
	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
	        return
	    }
	    // proceed with valid request
	}

# Error Shapes

A single failed field produces:

	{
	    "code": "VALIDATION_ERROR",
	    "message": "GraphType must be one of: bar pie all",
	    "details": {"field": "GraphType", "tag": "oneof", "value": "sparkline"}
	}

Multiple failures aggregate under details.fields with a combined message.
*/
package validation
