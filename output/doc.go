// Package output provides universe.Sink implementations that persist or
// display rendered images.
//
//   - Files writes output<index>.<ext> in PNG, BMP or raw packed form.
//   - Drawer draws on any periph.io display.Drawer, such as an SSD1306 OLED.
//   - Terminal prints a preview, colored half blocks on a TTY and ASCII otherwise.
//   - Multi fans an image out to several sinks.
package output
