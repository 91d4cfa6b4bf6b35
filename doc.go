// Ddplot draws depth-vs-depth plots (DD-plots) of functional data.
//
// A DD-plot places every sample of a functional dataset at the point
// (depth against distribution 1, depth against distribution 2). It is
// useful to see whether the data is more typical under one reference
// distribution than under the other: samples on the diagonal are
// equally deep in both.
//
//
// Data Representation
//
// Functional samples are discretized curves: an FData holds one shared
// evaluation grid and one row of values per sample. The dataset and
// both reference distributions use the same representation.
//
//
// Depth Methods
//
// This package does not compute depths itself. A Depth is an injected
// capability with a two-phase contract: Fit it once to the dataset,
// then Evaluate it against each reference distribution. Its Bounds
// determine the axis range of the plot, so the frame is stable no
// matter where the observed depths cluster.
//
//
// Rendering
//
// Rendering is delegated to gonum.org/v1/plot. Each sample becomes its
// own scatter artist so that an interactivity layer can map a picked
// point back to the originating sample; this package only records the
// handles and stays out of event handling.
package ddplot
