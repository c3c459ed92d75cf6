package serviceImp

import (
	"encoding/json"
	"regexp"

	"zbalo/pkg/assistant/types"
)

// A candidate is a maximal ###-delimited substring that starts with '{' and
// contains no sentinel character. The sentinel can in theory occur in prose,
// so extraction is best effort: candidates that fail to parse are dropped
// without affecting the rest.
var actionRX = regexp.MustCompile(`###(\{[^#]+\})###`)

// extractActions pulls every well-formed action object out of a reply, in
// source order. Pure: nothing is executed here.
func extractActions(reply string) []types.Action {
	var out []types.Action
	for _, m := range actionRX.FindAllStringSubmatch(reply, -1) {
		var a types.Action
		if err := json.Unmarshal([]byte(m[1]), &a); err != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}
