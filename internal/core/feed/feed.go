package feed

// Kind names one of the listing views.
type Kind string

const (
	KindIndex   Kind = "index"
	KindGroup   Kind = "group"
	KindProfile Kind = "profile"
	KindFollow  Kind = "follow"
)
