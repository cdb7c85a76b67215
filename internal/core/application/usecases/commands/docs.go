// Package commands contains the delivery filter's use case: load an order
// file, select one district's orders inside a delivery window and write them
// out. Commands are validated value objects; handlers own orchestration and
// all run logging.
package commands
