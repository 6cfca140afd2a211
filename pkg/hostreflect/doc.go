// Package hostreflect implements model.Host over Go's reflect package.
//
// Containers are pointers to structs. Exported fields are described in
// declaration order; unexported fields are skipped because reflect cannot set
// them. Annotations come from struct tags and optional marker interfaces, and
// a model.Decorator (for example an overlay.Store) may contribute more:
//
//	type Settings struct {
//		Name   string  `draw:"label=Player name,maxlen=16"`
//		HP     int     `range:"0,100"`
//		Mode   Mode    `draw:"kind=togglegroup"`
//		Boost  float64 `draw:"slider,min=0,max=2,precision=1,visibleOn=Mode|Active"`
//		Audio  Audio   `draw:"collapsible,box" drawfields:"public"`
//		Secret string  `draw:"-"`
//	}
//
// Serialized fields are those with a json or yaml tag whose name is not "-";
// a "-" name marks the field as not serialized.
package hostreflect
