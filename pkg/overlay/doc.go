// Package overlay loads annotation overlays from YAML or JSON files and
// applies them on top of the annotations a host reads from struct tags.
//
// An overlay document maps type names (as reported by the host, e.g.
// "main.Settings") to type- and field-level entries:
//
//	types:
//	  main.Settings:
//	    drawfields: serialized
//	    fields:
//	      Volume:
//	        draw: "kind=slider,min=0,max=1"
//	        header: Audio
//	      Debug:
//	        draw: "-"
//
// The draw, range and drawfields values use the same grammar as the
// corresponding struct tags. Label and header text is stripped of markup.
package overlay
