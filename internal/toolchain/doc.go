// Package toolchain detects the identity of the build environment: the
// operating system and the Fortran/C compiler vendors. The detected identity
// drives rule selection and yields the two always-on baseline macros.
package toolchain
