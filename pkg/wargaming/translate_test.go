package wargaming_test

import (
	"testing"

	"github.com/leighmacdonald/wgapi/pkg/wargaming"
	"github.com/stretchr/testify/require"
)

func TestTranslateErrorKnownCodes(t *testing.T) {
	known := map[string]string{
		"SEARCH_NOT_SPECIFIED":           "Parameter search not specified.",
		"NOT_ENOUGH_SEARCH_LENGTH":       "Search parameter is not long enough. Minimum length: 3 characters.",
		"ACCOUNT_ID_LIST_LIMIT_EXCEEDED": "Limit of passed-in account_id IDs exceeded. Maximum: 100.",
		"METHOD_DISABLED":                "Specified method is disabled.",
		"APPLICATION_IS_BLOCKED":         "Application is blocked by the administration.",
		"INVALID_APPLICATION_ID":         "Invalid application_id.",
		"INVALID_IP_ADDRESS":             "Invalid IP-address for the server application.",
		"REQUEST_LIMIT_EXCEEDED":         "Request limit is exceeded.",
		"SOURCE_NOT_AVAILABLE":           "Data source is not available.",
		"INVALID_FIELDS":                 "Invalid fields specified in fields parameter.",
		"AUTH_CANCEL":                    "Application authorization cancelled by user.",
		"AUTH_EXPIRED":                   "User authorization timed out.",
		"AUTH_ERROR":                     "Authentication error.",
		"MEMBER_ID_LIST_LIMIT_EXCEEDED":  "Limit of passed-in member_id IDs exceeded. Maximum: 100.",
		"CLAN_ID_LIST_LIMIT_EXCEEDED":    "Limit of passed-in clan_id IDs exceeded. Maximum: 100.",
		"INCOMPATIBLE_MODULE_IDS":        "Specified modules are incompatible in a single configuration.",
		"ACCOUNT_ID_NOT_SPECIFIED":       "Required parameter account_id was not specified.",
		"TYPE_NOT_SPECIFIED":             "Required parameter type was not specified.",
		"INVALID_TYPE":                   "Invalid value set in type parameter.",
		"RATINGS_NOT_FOUND":              "No rating details for specified date.",
		"RANK_FIELD_NOT_SPECIFIED":       "Required parameter rank_field not specified.",
		"INVALID_RANK_FIELD":             "Invalid value set in rank_field parameter.",
		"INVALID_CLAN_ID":                "Invalid value set in clan_id parameter. Clan with that ID probably don't exist.",
		"CLAN_ID_NOT_SPECIFIED":          "Required parameter clan_id was not specified.",
		"INVALID_LIMIT":                  "Invalid value set in limit parameter.",
	}

	for code, message := range known {
		require.Equal(t, message, wargaming.TranslateError(code, ""), code)
		require.Equal(t, message, wargaming.TranslateError(code, "wot/account/list"), code)
	}

	// Every code with a dedicated message is covered above.
	require.Len(t, wargaming.KnownErrorCodes(), len(known)+1)
}

func TestTranslateErrorMethodNotFound(t *testing.T) {
	require.Equal(t, "Invalid API method wot/account/lists.",
		wargaming.TranslateError("METHOD_NOT_FOUND", "wot/account/lists"))
	require.Equal(t, "Invalid API method.", wargaming.TranslateError("METHOD_NOT_FOUND", ""))
}

func TestTranslateErrorPatterns(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"FOO_NOT_FOUND", "Data for foo not found."},
		{"NICKNAME_NOT_SPECIFIED", "Required field nickname is not specified."},
		{"TANK_ID_LIST_LIMIT_EXCEEDED", "Limit of passed-in identifiers in the tank_id exceeded."},
		{"INVALID_DATE", "Specified field value date is not valid."},
		{"invalid_date", "Specified field value date is not valid."},
		{"Account_Not_Found", "Data for account not found."},
		// Patterns are checked in order.
		{"INVALID_TANK_NOT_FOUND", "Data for invalid_tank not found."},
		// INVALID_ only applies as a prefix.
		{"SOMETHING_INVALID_HERE", "SOMETHING_INVALID_HERE"},
		// Nothing left once the trigger is removed.
		{"_NOT_FOUND", "_NOT_FOUND"},
		{"UNKNOWN_PROBLEM", "UNKNOWN_PROBLEM"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			require.Equal(t, tc.want, wargaming.TranslateError(tc.code, "ns"))
		})
	}
}
