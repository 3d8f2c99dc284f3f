// Package anim interpolates displayed values toward the targets computed by
// the stepper core. The core never tweens; it only says where values should
// end up. Swapping this package changes motion without touching layout.
package anim
