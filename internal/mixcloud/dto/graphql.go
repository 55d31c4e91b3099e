package dto

import "encoding/json"

// GraphQLRequest is the JSON body posted to the Mixcloud GraphQL endpoint.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GraphQLResponse is the generic envelope of a GraphQL reply. Data is
// decoded a second time into a query-specific type by the caller.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError is one server-reported query error.
type GraphQLError struct {
	Message string `json:"message"`
}

// PageInfo carries the cursor state for paginated connections.
type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}
