// Package pathutil holds small path helpers shared by the validator and the
// command line tools.
//
// [PathBuilder] tracks the dotted location of a validation finding while the
// validator walks a document ("paths.chat/Chat/Send.post.parameters[0]").
// Segments are pushed and popped as the walk descends, and the string is only
// materialized when a finding is recorded. Builders are pooled:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("parameters")
//	path.PushIndex(i)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
// [TemplateParams] reports "{name}" placeholders left in a synthesized path,
// and [SanitizeOutputPath] cleans file paths before a document is written.
package pathutil
