/*
Package formula maps observed masses to chemical formulas.

Given a target monoisotopic mass and a set of candidate elements, the package
builds a bounded linear constraint system over per-element atom counts
(BoundedSystem), enumerates every integer solution through package smt, and
turns the surviving assignments back into formulas. The Enumerator ties the
steps together: it rounds the observed mass to a small window of integer
targets, enumerates each target, unions the candidates and keeps those whose
exact monoisotopic mass, recomputed from unrounded atomic masses, falls within
tolerance of the observed value.

Observed mass spectrometry values are m/z ratios of ionized molecules rather
than neutral masses; NeutralMass and EnumerateIon take the ionic offset into
account for the common singly charged adducts.
*/
package formula
