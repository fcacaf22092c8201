package params

// ResolvedParam is one parameter definition merged with its effective value,
// built for external consumers such as rendering layers
type ResolvedParam struct {
	Name     string
	Value    string
	Metadata Metadata
}

// NamespaceParams groups the resolved parameters of one namespace in
// registration order
type NamespaceParams struct {
	Name   string
	Params []ResolvedParam
}
