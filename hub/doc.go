// Package hub defines the metadata model hubdoc reads hub definitions into.
//
// A hub is a Go type whose methods are invoked remotely over a persistent
// bidirectional connection. Hubs and their members carry optional
// descriptors:
//
//   - [HubDescriptor] marks a type as a hub and sets its path template,
//     document membership and [DiscoveryMode].
//   - [MethodDescriptor] renames a method's path segment, selects its verb,
//     documents it, and overrides argument discovery with [ArgDiscovery].
//   - [ArgumentDescriptor] documents a single parameter.
//   - A Hidden flag on a [Type], [Method] or [Param] excludes the entity and
//     everything under it.
//
// The model is read-only for the builder. Modules expose hub types through
// the [Module] interface; package loader produces modules from Go source
// annotated with //hubdoc: directives, and [NewModule] builds one from an
// explicit registration table.
package hub
