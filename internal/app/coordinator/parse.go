package coordinator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

var numberPattern = regexp.MustCompile(`(\d+)`)

// keyword groups per action: the first entry of a group is canonical,
// the rest are accepted synonyms.
var actionKeywords = map[entities.ActionKind][][]string{
	entities.ActionCoin:    {{"heads"}, {"tails"}},
	entities.ActionDefer:   {{"receive"}, {"defer"}},
	entities.ActionKickoff: {{"normal"}, {"squib"}, {"onside"}},
	entities.ActionPlay: {
		{"run"},
		{"pass"},
		{"punt"},
		{"field goal", "fieldgoal", "fg"},
	},
	entities.ActionConversion: {
		{"pat", "extra point"},
		{"two point", "twopoint", "two-point"},
	},
}

// findKeyword locates exactly one keyword for the given action in the
// message body. Zero or multiple matches are reported as errors with
// text a coach can act on.
func findKeyword(action entities.ActionKind, body string) (string, error) {
	groups, ok := actionKeywords[action]
	if !ok {
		return "", fmt.Errorf("no keywords for action %s", action)
	}

	body = strings.ToLower(body)
	var found []string
	for _, group := range groups {
		for _, keyword := range group {
			if strings.Contains(body, keyword) {
				found = append(found, group[0])
				break
			}
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("couldn't find anything that looks like a %s call in your message", action)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("found multiple calls in your message: %s", strings.Join(found, ", "))
	}
}

// extractNumber pulls the single in-range number out of a defensive
// reply.
func extractNumber(body string, min, max int) (int, error) {
	numbers := numberPattern.FindAllString(body, -1)
	if len(numbers) == 0 {
		return 0, fmt.Errorf("it looks like you should be sending me a number, but I can't find one in your message")
	}
	if len(numbers) > 1 {
		return 0, fmt.Errorf("it looks like you put more than one number in your message")
	}
	number, err := strconv.Atoi(numbers[0])
	if err != nil {
		return 0, fmt.Errorf("I found %s, but that's not a valid number", numbers[0])
	}
	if number < min || number > max {
		return 0, fmt.Errorf("I found %d, but that's not between %d and %d", number, min, max)
	}
	return number, nil
}
