// Package extend resolves template inheritance between components.
//
// A base component marks splice sites in its template:
//
//	<template>
//	  <div class="page"><extension-point name="body">default</extension-point></div>
//	</template>
//
// A child names the base and overrides points by name:
//
//	<template extends="./Page.vue">
//	  <extensions>
//	    <extension point="body"><p>child body</p></extension>
//	  </extensions>
//	</template>
//
// Resolution is depth-first: the outermost ancestor is merged into by its
// child, the result into the next child, and so on down to the file being
// transformed. Every merged level is itself a valid component whose
// template carries the extendable marker, so chains of any length compose.
//
// Any failure rejects the whole chain. There is no partial result.
package extend
