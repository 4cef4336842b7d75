// Package metrics holds the prometheus collectors of the explorer backend.
package metrics

const (
	namespace = "kaspa_explorer"
	unknown   = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
