/*
Futures is a library that wraps callback-based asynchronous operations into
composable values, so that sequential asynchronous steps read top to bottom
instead of nesting into a pyramid of callbacks.

The building block is an AsyncOperation: any function that accepts a single
completion callback, returns promptly, and delivers its result later by
invoking that callback. New stores one such operation in a Future without
running it. Then combines a Future with a continuation into a new Future,
still without running anything. Only the final Resolve call executes the
chain, strictly left to right.

For a longer introduction, see the programs under blog_example/.

Examples

Single future:
	f := future.New(func(completion func(int)) {
		go func() { completion(1) }()
	})
	f.Resolve(func(v int) {
		fmt.Println(v) // 1
	})

Chained future:
	data := future.New(loadData)
	images := future.Then(data, loadImages)
	processed := future.Then(images, processImages)
	// Nothing has run yet. This resolves the whole chain, in order:
	processed.Resolve(func(images []string) {
		render(images)
	})

Fan-out and fan-in:
	pages := future.All(fetch(a), fetch(b), fetch(c))
	sum := future.Map(pages, checksum)
	sum.Resolve(func(s string) { fmt.Println(s) })

Failure short-circuiting, via the result sub-package:
	report := future.ThenResult(future.GoResult(fetch), parse)
	report.Resolve(func(r result.Result[Report]) {
		v, err := r.Get()
		...
	})

The core makes deliberately few promises. Resolve hands the terminal
handler to the wrapped operation unchanged and adds nothing around it: an
operation that completes twice reaches the handler twice (wrap it in Once
to suppress that), and an operation that never completes hangs its chain
silently. All concurrency belongs to the wrapped operations.
*/
package future
