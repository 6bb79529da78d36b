package api

import (
	"github.com/attest-io/attest/internal/config"
	"github.com/attest-io/attest/pkg/openapi"
)

// buildSpec constructs the OpenAPI 3.1 document for the API module and
// returns it pre-serialized for serving.
func buildSpec(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(schemas())
	addRoutinePaths(spec)
	addVerificationPaths(spec)
	addCapturePaths(spec)
	addInsightPaths(spec)
	addStatusPaths(spec)

	return openapi.MarshalJSON(spec)
}

func schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Routine": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"title":      {Type: "string"},
				"note":       {Type: "string"},
				"time":       {Type: "string", Example: "06:30"},
				"status":     {Type: "string", Enum: []any{"Pending", "Completed", "On-Time"}},
				"color":      {Type: "string", Example: "teal"},
				"icon":       {Type: "string", Example: "AlarmClock"},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"RoutineCreate": {
			Type:     "object",
			Required: []string{"title", "time"},
			Properties: map[string]*openapi.Schema{
				"title": {Type: "string"},
				"note":  {Type: "string"},
				"time":  {Type: "string", Example: "06:30"},
				"color": {Type: "string", Default: "teal"},
				"icon":  {Type: "string", Default: "AlarmClock"},
			},
		},
		"SubmitCapture": {
			Type:     "object",
			Required: []string{"image_data"},
			Properties: map[string]*openapi.Schema{
				"image_data": {Type: "string", Description: "Encoded capture payload; may be empty"},
				"routine_id": {Type: "string", Description: "Weak routine reference, not validated"},
			},
		},
		"VerifyResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"verdict":    {Type: "string", Enum: []any{"Verified", "Unclear", "Not Verified"}},
				"confidence": {Type: "number", Minimum: floatPtr(0.30), Maximum: floatPtr(0.99)},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"Verification": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"routine_id": {Type: "string"},
				"capture_id": {Type: "string", Format: "uuid"},
				"verdict":    {Type: "string"},
				"confidence": {Type: "number"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"Capture": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"routine_id":  {Type: "string"},
				"preview":     {Type: "string", MaxLength: intPtr(1000)},
				"storage_key": {Type: "string"},
				"size_bytes":  {Type: "integer"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"Insights": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"summary": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"completionRate": {Type: "number"},
						"streak":         {Type: "integer"},
						"totalChecks":    {Type: "integer"},
					},
				},
				"weekly": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"day":   {Type: "string"},
							"count": {Type: "integer"},
						},
					},
				},
			},
		},
		"StatusReport": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"backend":  {Type: "string"},
				"database": {Type: "string"},
				"storage":  {Type: "string"},
				"version":  {Type: "string"},
			},
		},
	}
}

func addRoutinePaths(spec *openapi.Spec) {
	spec.Paths["/routines"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List routines",
			Tags:    []string{"routines"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("search", "string", "Search title and note", false),
				openapi.QueryParam("status", "string", "Filter by status", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated routines", "Routine"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Create a routine",
			Tags:        []string{"routines"},
			RequestBody: openapi.RequestBodyJSON("RoutineCreate", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created routine", "Routine"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}

	spec.Paths["/routines/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a routine",
			Tags:       []string{"routines"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Routine ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Routine", "Routine"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Delete: &openapi.Operation{
			Summary:    "Delete a routine",
			Tags:       []string{"routines"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Routine ID")},
			Responses: map[int]*openapi.Response{
				204: {Description: "Deleted"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/routines/{id}/complete"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:    "Mark a routine completed",
			Tags:       []string{"routines"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Routine ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated routine", "Routine"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addVerificationPaths(spec *openapi.Spec) {
	spec.Paths["/verify"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Submit a capture for verification",
			Tags:        []string{"verifications"},
			RequestBody: openapi.RequestBodyJSON("SubmitCapture", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Scoring result", "VerifyResult"),
				400: openapi.ResponseRef("BadRequest"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/verifications"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List verification history",
			Tags:    []string{"verifications"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("page", "integer", "Page number", false),
				openapi.QueryParam("page_size", "integer", "Results per page", false),
				openapi.QueryParam("verdict", "string", "Filter by verdict", false),
				openapi.QueryParam("routine_id", "string", "Filter by routine", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Paginated verifications", "Verification"),
			},
		},
	}

	spec.Paths["/verifications/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a verification record",
			Tags:       []string{"verifications"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Verification ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Verification", "Verification"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addCapturePaths(spec *openapi.Spec) {
	spec.Paths["/captures/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Find a capture preview",
			Tags:       []string{"captures"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Capture ID")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Capture", "Capture"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/captures/{id}/download"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Download the full capture payload",
			Tags:       []string{"captures"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Capture ID")},
			Responses: map[int]*openapi.Response{
				200: {Description: "Capture payload stream"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addInsightPaths(spec *openapi.Spec) {
	spec.Paths["/insights"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Trailing-window verification insights",
			Tags:    []string{"insights"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("window_days", "integer", "Window size in days (default 7, max 90)", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Aggregated insights", "Insights"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}
}

func addStatusPaths(spec *openapi.Spec) {
	spec.Paths["/status"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Collaborator reachability report",
			Tags:    []string{"status"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Status report", "StatusReport"),
			},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
