/*
Package domain contains the core data model shared by every planning-domain
generator.

It defines the entities a generation run derives from a single size parameter:
Locations, the road relation between them, Propositions split into environment
and agent classes, Actions with their precondition and add/delete effects, and
the Instance aggregate that ties them together. The package is kept pure and
free of I/O; generators build an Instance once and the compilers only read it.

# Key Entities

  - Location: a grid cell (row, column) or a triangle node (depth-from-left, depth-from-right).
  - Proposition: a named boolean variable owned by the environment or the agent.
  - Action: an agent proposition with a precondition and add/delete lists over fluents.
  - Instance: the root aggregate of one generation run.
*/
package domain
