/*
Package observability provides Prometheus instrumentation for generation runs.

It counts encodings per domain, mode and outcome, and records how large the
generated formulas and partitions grow with the size parameter, which is the
figure benchmark authors usually tune.
*/
package observability
