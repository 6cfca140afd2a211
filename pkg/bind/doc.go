// Package bind drives one render pass over a container: it describes the
// container through a model.Host, walks it with a walker.Walker drawing
// through a ui.Toolkit, and calls onChange at most once when any field was
// edited.
//
//	b := bind.New(bind.WithToolkit(tk))
//	changed, err := b.BindMasked(&settings, model.MaskPublic, settings.Save)
//
// Configuration errors (bad annotations, incompatible widget kinds) are
// returned and abort the pass. Errors and panics raised by onChange are
// recovered, logged and swallowed so a faulty callback never breaks the
// frame.
package bind
