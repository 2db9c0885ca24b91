package pixiv

import (
	"strings"
	"testing"
)

func TestEndpointCatalogSanity(t *testing.T) {
	for op, ep := range Endpoints {
		if ep.Method != "GET" && ep.Method != "POST" {
			t.Errorf("%s: unexpected method %q", op, ep.Method)
		}
		if !strings.HasPrefix(ep.Path, "/") && !strings.HasPrefix(ep.Path, "https://") {
			t.Errorf("%s: path %q is neither relative nor absolute", op, ep.Path)
		}

		seen := map[string]bool{}
		for _, p := range ep.Params {
			if p.Name == "" {
				t.Errorf("%s: unnamed parameter", op)
			}
			if seen[p.Name] {
				t.Errorf("%s: duplicate parameter %q", op, p.Name)
			}
			seen[p.Name] = true

			if p.Required && p.Default != "" {
				t.Errorf("%s: %q is required yet has a default", op, p.Name)
			}
			if ep.Method == "GET" && p.In == InForm {
				t.Errorf("%s: GET endpoint with form parameter %q", op, p.Name)
			}
			if ep.Method == "POST" && p.In == InQuery {
				t.Errorf("%s: POST endpoint with query parameter %q", op, p.Name)
			}
			if p.In == InPath && !strings.Contains(ep.Path, "{"+p.Name+"}") {
				t.Errorf("%s: path parameter %q has no placeholder in %q", op, p.Name, ep.Path)
			}
		}
	}
}

func TestEndpointAuthFlags(t *testing.T) {
	public := map[string]bool{
		"IllustRecommendedNologin": true,
		"ShowcaseArticle":          true,
	}
	for op, ep := range Endpoints {
		if ep.Auth == public[op] {
			t.Errorf("%s: Auth = %v, want %v", op, ep.Auth, !public[op])
		}
	}
}
