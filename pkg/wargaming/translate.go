package wargaming

import (
	"strings"

	"golang.org/x/exp/slices"
)

// errorMessages are the documented API error codes.
var errorMessages = map[string]string{ //nolint:gochecknoglobals
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

const methodNotFound = "METHOD_NOT_FOUND"

type errorPattern struct {
	trigger  string
	prefix   bool
	template func(subject string) string
}

// Checked in order, the first pattern with a non empty subject wins.
var errorPatterns = []errorPattern{ //nolint:gochecknoglobals
	{
		trigger:  "_NOT_SPECIFIED",
		template: func(subject string) string { return "Required field " + subject + " is not specified." },
	},
	{
		trigger:  "_NOT_FOUND",
		template: func(subject string) string { return "Data for " + subject + " not found." },
	},
	{
		trigger: "_LIST_LIMIT_EXCEEDED",
		template: func(subject string) string {
			return "Limit of passed-in identifiers in the " + subject + " exceeded."
		},
	},
	{
		trigger:  "INVALID_",
		prefix:   true,
		template: func(subject string) string { return "Specified field value " + subject + " is not valid." },
	},
}

// TranslateError turns an API error code into a human readable message. Unknown codes
// are matched against the common suffix patterns and returned unchanged when nothing fits.
// The namespace is only used by METHOD_NOT_FOUND.
func TranslateError(code string, namespace string) string {
	if code == methodNotFound {
		if namespace == "" {
			return "Invalid API method."
		}

		return "Invalid API method " + namespace + "."
	}

	if message, found := errorMessages[code]; found {
		return message
	}

	upper := strings.ToUpper(code)
	for _, pattern := range errorPatterns {
		if pattern.prefix && !strings.HasPrefix(upper, pattern.trigger) {
			continue
		}

		if !strings.Contains(upper, pattern.trigger) {
			continue
		}

		subject := strings.ToLower(strings.ReplaceAll(upper, pattern.trigger, ""))
		if subject == "" {
			continue
		}

		return pattern.template(subject)
	}

	return code
}

// KnownErrorCodes returns the codes with a dedicated message, sorted.
func KnownErrorCodes() []string {
	codes := make([]string, 0, len(errorMessages)+1)
	codes = append(codes, methodNotFound)
	for code := range errorMessages {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}
