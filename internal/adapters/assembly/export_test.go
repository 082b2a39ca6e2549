package assembly

// Manifest exports manifest for testing.
var Manifest = manifest

// PublicKeyToken exports publicKeyToken for testing.
var PublicKeyToken = publicKeyToken
