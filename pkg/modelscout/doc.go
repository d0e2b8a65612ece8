// Package modelscout recommends machine-learning models for free-text task
// descriptions.
//
// A Scout classifies a description into a task category and subcategory,
// using a sentence-embedding classifier when the ONNX encoder is available
// and a keyword classifier otherwise, then returns matching models from the
// catalog grouped by resource tier.
//
// Creating a Scout starts encoder initialization in the background; the
// first classification call waits for it (bounded by the ready timeout) and
// degrades to the keyword classifier if the encoder cannot be loaded.
// Create one Scout per process and reuse it across requests.
package modelscout
