package keytransform

// EnvKeyClass is the classification of one environment variable name.
type EnvKeyClass struct {
	// AppID is the known app the variable is scoped to, when Scoped.
	AppID string
	// Rest is the part after PREFIX_ or PREFIX_{APP}_.
	Rest string
	// Scoped is true for PREFIX_{KNOWN_APP}_{REST}.
	Scoped bool
	// Generic is true for any other PREFIX_{REST}.
	Generic bool
}

// ClassifyEnvKey decides whether envKey is app-scoped, generic or unrelated.
//
// A variable is scoped only when it reads PREFIX_{APP}_{REST} for one of
// knownApps; when several apps match, the longest app token wins so "admin"
// never captures CONFIG_ADMIN_API_X from a known "admin-api". Every other
// PREFIX_{REST} variable is generic. Loaders and the fallback system share
// this function so a variable is never counted twice or dropped.
func (t *Transformer) ClassifyEnvKey(envKey string, knownApps []string) EnvKeyClass {
	generic := t.prefix + "_"
	if !hasPrefixFold(envKey, generic) {
		return EnvKeyClass{}
	}
	rest := envKey[len(generic):]

	var bestApp, bestToken string
	for _, app := range knownApps {
		token := AppToken(app) + "_"
		if len(token) > len(bestToken) && hasPrefixFold(rest, token) {
			bestApp, bestToken = app, token
		}
	}

	if bestApp != "" {
		return EnvKeyClass{AppID: bestApp, Rest: rest[len(bestToken):], Scoped: true}
	}
	return EnvKeyClass{Rest: rest, Generic: true}
}

// IsPrefixed reports whether envKey starts with the generic prefix.
func (t *Transformer) IsPrefixed(envKey string) bool {
	return hasPrefixFold(envKey, t.prefix+"_")
}
