/*
Package isqrt calculates integer square roots. The integer square root
(“isqrt”) of a non-negative integer n is the largest integer s with
s·s ≤ n; the isqrt of 30 is 5, since 5² = 25 and 6² = 36.

The root package holds the full-cost routines: Newton's method over plain
unsigned integers, exact for every value of every unsigned width (no
floating-point detour, which would round for inputs near the top of the
64-bit range). Sub-package gradual holds the interesting part: computing
isqrts for values that change gradually, at a cost proportional to how far
the root moves rather than to the magnitude of the value.

The gradual algorithms remember the previous root together with the range
of inputs it is valid for. If the last value processed was 133, the root
was 11, and 11 stays correct up to 143. A next value of 136 costs a single
comparison. A value of 145 slides the validity window up by 2·12 + 1 and
finds 12. Only a value far away from the previous one — say 1 000 293 —
makes the window walk expensive, and for that case the tracker falls back
to the full-cost routines in this package.

A typical client is a stream of sensor samples on hardware without an FPU:
isqrt(x² + y²) as a magnitude measure rises and falls with movement but
does not jump around, which is exactly the regime the gradual algorithms
are built for. Precision can be increased by scaling inputs, preferably by
a power of 2: feeding 64·n yields 8× the resolution of feeding n.

Status

Work in progress.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package isqrt
