package engine

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kolah/wilbur/internal/model"
)

// URLPlan is the ordered plan for building one operation's request URL:
// first the path placeholder substitutions, then the query pair
// appends. Steps keep the declaration order of the operation's
// parameter list.
type URLPlan struct {
	PathTemplate  string
	Substitutions []PathSubstitution
	Query         []QueryStep
}

// PathSubstitution replaces one {name} placeholder with the stringified
// parameter value. Placeholders are disjoint literal tokens, so the
// substitution order carries no meaning.
type PathSubstitution struct {
	Placeholder string
	Param       string // safe identifier of the path parameter
}

// QueryStep appends one name=value pair. Array-valued parameters
// serialize as a single comma-joined value under one key. Optional
// parameters contribute no pair at all when absent.
type QueryStep struct {
	Key      string // wire name of the query parameter
	Param    string // safe identifier
	IsArray  bool
	Required bool
}

// BuildURLPlan produces the plan for a path template and its classified
// parameters.
func BuildURLPlan(path string, params []ParameterDescriptor) URLPlan {
	plan := URLPlan{PathTemplate: path}

	for _, p := range filterByLocation(params, model.LocationPath) {
		plan.Substitutions = append(plan.Substitutions, PathSubstitution{
			Placeholder: "{" + p.SourceName + "}",
			Param:       p.Ident,
		})
	}

	for _, p := range filterByLocation(params, model.LocationQuery) {
		plan.Query = append(plan.Query, QueryStep{
			Key:      p.SourceName,
			Param:    p.Ident,
			IsArray:  p.IsArray,
			Required: p.Required,
		})
	}

	return plan
}

// Expand evaluates the plan against a base URL and a value map keyed by
// safe identifiers. Absent optional parameters contribute nothing; an
// absent required parameter or an unparseable URL is reported as an API
// error, never a panic.
func (p URLPlan) Expand(baseURL string, values map[string]any) (string, error) {
	path := p.PathTemplate
	for _, sub := range p.Substitutions {
		v, ok := values[sub.Param]
		if !ok {
			return "", &APIError{Status: 400, Message: fmt.Sprintf("missing path parameter: %s", sub.Param)}
		}
		path = strings.ReplaceAll(path, sub.Placeholder, stringify(v))
	}

	u, err := url.Parse(baseURL + path)
	if err != nil {
		return "", &APIError{Status: 400, Message: fmt.Sprintf("invalid URL: %v", err)}
	}

	var pairs []string
	for _, step := range p.Query {
		v, ok := values[step.Param]
		if !ok || v == nil {
			if step.Required {
				return "", &APIError{Status: 400, Message: fmt.Sprintf("missing required query parameter: %s", step.Key)}
			}
			continue
		}
		pairs = append(pairs, url.QueryEscape(step.Key)+"="+url.QueryEscape(stringify(v)))
	}
	if len(pairs) > 0 {
		u.RawQuery = strings.Join(pairs, "&")
	}

	return u.String(), nil
}

// stringify renders a parameter value for the wire. Slices collapse to
// one comma-joined value.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}
