// Package recap holds the generated game-summary shapes.
package recap

// Result is one generated recap: ordered bullet strings plus the pair of
// teams and their aggregate scores, in the same order.
type Result struct {
	Summary []string  `json:"summary"`
	Teams   [2]string `json:"teams"`
	Scores  [2]int    `json:"scores"`
}
