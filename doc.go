// Package gopull provides composable, demand-driven streaming stages.
//
// A pipeline is a chain of stages connected by Compose. Nothing flows
// until the downstream end demands a value; each demand draws exactly
// one value through the chain, so effects happen on demand and
// upstream stages never run ahead. The first stage to terminate
// decides the result of the whole pipeline.
//
// # Quick Start
//
//	// Produce, transform, filter, consume
//	snk, collected := gopull.ToSlice[string]()
//	_, err := gopull.Run(ctx, gopull.Compose(
//		gopull.Compose(
//			gopull.Compose(
//				gopull.FromRange(10),
//				gopull.Filter[int, gopull.Unit](func(i int) bool { return i%2 == 0 }),
//			),
//			gopull.Transform[int, string, gopull.Unit](strconv.Itoa),
//		),
//		snk,
//	))
//	// collected.Value() == ["0", "2", "4", "6", "8"]
//
// # Categories
//
// Sources: [FromSlice], [FromRange], [FromFunc], [Repeat]
//
// Transducers: [Transform], [TransformContext], [Filter], [Tap],
// [Scan], [Cat]
//
// Windows: [Take], [TakeWhile], [Drop], [DropWhile]
//
// Folds: [All], [Any], [Head], [Fold]
//
// Sinks: [ToSlice], [ForEach], [Discard]
//
// Combiners: [Zip], [ZipWith], [Tee], [Generalize]
//
// Sources over readers and brokers live in the source package;
// decoding stages live in the decode package.
package gopull
