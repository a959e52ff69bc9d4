package platform

// Package platform contains OS/platform integration: filesystem helpers,
// day file naming, and OS open/reveal glue for exported files.
