package gallery

// Package gallery implements the selection and gallery controller: it owns
// the ordered set of selected breeds, the search filter, and the displayed
// image list. Selection changes launch one concurrent image fetch per breed,
// joined all-or-nothing; results are committed only if no newer selection
// superseded them.
