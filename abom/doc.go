// Package abom implements the Automatic Bill of Materials: a container of
// compressed Bloom filters holding the SHAKE128 identities of every file a
// build touched, and the version 1 wire format that embeds the container
// into built binaries or sidecar files.
package abom
