// Package swagger assembles the Swagger 2.0 document from annotated
// handlers. It is the aggregation stage the annotation records exist for:
// callers describe their routing table, the generator looks each handler up
// in the registry, emits an operation per annotated handler, and marks the
// record as docked so partially bound metadata can be detected.
package swagger
