package resolver

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/MKhiriev/go-config-resolver/internal/keytransform"
	"github.com/MKhiriev/go-config-resolver/models"
)

// search carries the state of one Resolve call.
type search struct {
	resolver *Resolver
	mapping  models.ConfigMap
	key      string
	appID    string

	attempted []string
	seen      map[string]struct{}

	value   any
	matched string
	score   float64
}

func (p *search) record(k string) bool {
	if k == "" {
		return false
	}
	if _, ok := p.seen[k]; ok {
		return false
	}
	p.seen[k] = struct{}{}
	p.attempted = append(p.attempted, k)
	return true
}

// try looks k up as a literal key.
func (p *search) try(k string) bool {
	if !p.record(k) {
		return false
	}
	if v, ok := p.mapping[k]; ok && v != nil {
		p.value, p.matched, p.score = v, k, 1
		return true
	}
	return false
}

// tryPath looks k up as a literal key and then as a dotted path.
func (p *search) tryPath(k string) bool {
	if p.try(k) {
		return true
	}
	if !strings.Contains(k, ".") {
		return false
	}
	if v, ok := p.mapping.Lookup(k); ok {
		p.value, p.matched, p.score = v, k, 1
		return true
	}
	return false
}

func (p *search) direct() bool {
	return p.try(p.key)
}

func (p *search) lowercase() bool {
	return p.try(strings.ToLower(p.key))
}

func (p *search) nested() bool {
	if !strings.Contains(p.key, ".") {
		return false
	}
	for _, k := range []string{p.key, strings.ToLower(p.key)} {
		if v, ok := p.mapping.Lookup(k); ok {
			p.record(k)
			p.value, p.matched, p.score = v, k, 1
			return true
		}
	}
	return false
}

func (p *search) prefixRemoval() bool {
	t := p.resolver.transformer
	var candidates []string

	if p.appID != "" {
		for _, sep := range []string{":", "."} {
			q := p.appID + sep
			if len(p.key) > len(q) && strings.EqualFold(p.key[:len(q)], q) {
				candidates = append(candidates, p.key[len(q):])
			}
		}
		candidates = append(candidates, t.StripPrefix(p.key, p.appID))
	}
	candidates = append(candidates, t.StripPrefix(p.key, ""))

	for _, c := range candidates {
		if c == p.key {
			continue
		}
		for _, k := range []string{c, strings.ToLower(c), keytransform.NormalizeKey(c), keytransform.NormalizeKey(strings.ReplaceAll(c, "_", "."))} {
			if p.tryPath(k) {
				return true
			}
		}
	}
	return false
}

func (p *search) underscoreToDot() bool {
	if !strings.Contains(p.key, "_") {
		return false
	}
	t := p.resolver.transformer
	candidates := []string{
		keytransform.NormalizeKey(strings.ReplaceAll(p.key, "_", ".")),
		t.EnvToService(p.key, p.appID),
		t.EnvToService(p.key, ""),
	}
	for _, k := range candidates {
		if p.tryPath(k) {
			return true
		}
	}
	return false
}

func (p *search) variants() bool {
	t := p.resolver.transformer

	bases := []string{p.key}
	for _, re := range p.resolver.variantPrefixes {
		if loc := re.FindStringIndex(p.key); loc != nil && loc[0] == 0 && loc[1] < len(p.key) {
			bases = append(bases, p.key[loc[1]:])
		}
	}

	for _, base := range bases {
		candidates := []string{
			keytransform.NormalizeKey(strings.ReplaceAll(base, "_", ".")),
			camelToDot(base),
			keytransform.NormalizeKey(strings.ReplaceAll(strings.ToLower(base), "-", ".")),
		}
		for _, k := range candidates {
			if p.tryPath(k) {
				return true
			}
		}
	}

	for _, k := range t.ResolveFallbackKeys(p.key, p.appID) {
		if p.tryPath(k) {
			return true
		}
	}

	// separator-free comparison against every key of the mapping
	targets := make(map[string]struct{}, len(bases))
	for _, base := range bases {
		if c := keytransform.CompactKey(base); c != "" {
			targets[c] = struct{}{}
		}
	}
	for _, k := range p.mapping.Keys() {
		if _, ok := targets[keytransform.CompactKey(k)]; !ok {
			continue
		}
		if v := p.mapping[k]; v != nil {
			p.record(k)
			p.value, p.matched, p.score = v, k, 1
			return true
		}
	}
	return false
}

func (p *search) partial() bool {
	needle := keytransform.CompactKey(p.resolver.transformer.StripPrefix(p.key, p.appID))
	if needle == "" {
		return false
	}

	best, bestScore := "", 0.0
	for _, k := range p.mapping.Keys() {
		hay := keytransform.CompactKey(k)
		if hay == "" || p.mapping[k] == nil {
			continue
		}
		if !strings.Contains(hay, needle) && !strings.Contains(needle, hay) {
			continue
		}
		p.record(k)
		if s := Similarity(needle, hay); s > p.resolver.partialThreshold && s > bestScore {
			best, bestScore = k, s
		}
	}
	if best == "" {
		return false
	}
	p.value, p.matched, p.score = p.mapping[best], best, bestScore
	return true
}

func (p *search) fuzzy() bool {
	needle := keytransform.CompactKey(p.resolver.transformer.StripPrefix(p.key, p.appID))
	if needle == "" {
		return false
	}

	// the best candidate is reported as attempted even below the threshold
	best, bestScore := "", -1.0
	for _, k := range p.mapping.Keys() {
		hay := keytransform.CompactKey(k)
		if hay == "" || p.mapping[k] == nil {
			continue
		}
		if s := Similarity(needle, hay); s > bestScore {
			best, bestScore = k, s
		}
	}
	if best == "" {
		return false
	}
	p.record(best)
	if bestScore <= p.resolver.fuzzyThreshold {
		return false
	}
	p.value, p.matched, p.score = p.mapping[best], best, bestScore
	return true
}

// Similarity is 1 minus the Levenshtein distance of a and b divided by the
// length of the longer string, in runes. Two empty strings are identical.
func Similarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// camelToDot turns "apiUrl" and "APIBaseURL" into "api.url" and
// "api.base.url".
func camelToDot(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('.')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return keytransform.NormalizeKey(strings.NewReplacer("_", ".", "-", ".").Replace(b.String()))
}
