// Package region provides the in-memory model for layered API visibility
// declarations: named regions of exported package identifiers, chained into
// a single inheritance hierarchy.
//
// # Overview
//
// A [Region] is a named set of package identifiers with an optional parent
// region. A region's effective membership is its own entries plus everything
// its ancestors export. Regions are created exclusively through a
// [Collection], which appends each new region with the previously created
// region as its parent. The chain is therefore a simple linked list: it is
// acyclic by construction and never needs cycle checks at query time.
//
//	c := region.New()
//	base, _ := c.Create("base")
//	base.Add("org.apache.felix.inventory")
//
//	ext, _ := c.Create("extended") // parent is "base"
//	ext.Add("org.apache.felix.scr.component")
//
//	ext.Contains("org.apache.felix.inventory") // true, inherited
//
// # Validation
//
// [Region.Add] is a best-effort filter, not a strict API: identifiers that
// are empty, fail the package-name grammar, collide with a reserved Java
// keyword, or already exist anywhere in the ancestor chain are silently
// dropped and Add reports false. Use [Validate] to find out why an
// identifier would be rejected.
//
// # Traversal
//
// [Region.All] yields the region's own entries followed by each ancestor's
// entries, nearest first, without copying. The sequence is restartable and
// reflects live membership at traversal time. [Region.Iterator] exposes the
// same traversal as a pull-style iterator with HasNext/Next semantics.
//
// # Concurrency
//
// The model is not safe for concurrent mutation. Callers sharing a
// Collection across goroutines must synchronize access externally.
package region
