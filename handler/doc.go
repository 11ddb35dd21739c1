/*
Package handler registers the main waPC entry point of a Tarmac WebAssembly
function.

When Config.Calls is set, the handler is wrapped with that call logger before
registration, so every invocation from the host is logged on entry and exit
under the name "handler".
*/
package handler
