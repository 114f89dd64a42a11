package engine

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/arunprasath/audiograph/pkg/audio"
	"github.com/arunprasath/audiograph/pkg/config"
	"github.com/arunprasath/audiograph/pkg/graph"
	"github.com/arunprasath/audiograph/pkg/logging"
	"github.com/arunprasath/audiograph/pkg/node"
	"github.com/arunprasath/audiograph/pkg/observer"
)

// NodeID identifies a node within an AudioGraph. IDs are monotonically
// allocated by AddNode and never reused.
type NodeID uint64

// AudioGraph is a real-time-safe directed acyclic graph of audio nodes.
// Topology (AddNode, RemoveNode, AddEdge, RemoveEdge, Prepare, Reset) is a
// control-thread concern; Process is the sole real-time entry point and
// must not be called concurrently with any topology mutation.
type AudioGraph struct {
	id string

	cfg       *config.Config
	logger    *logging.Logger
	observers *observer.Manager

	nodes  map[NodeID]node.Node
	topo   *graph.DirectedGraph[NodeID]
	nextID NodeID

	sampleRate   float32
	maxBlockSize int
	numChannels  int

	// nodeOutputs caches each node's output from the current block,
	// keyed by ID, so fan-out successors can read a predecessor's
	// result without recomputation. Reallocated only by Prepare.
	nodeOutputs map[NodeID][]float32

	// scratch is the per-node summed-input buffer reused across every
	// node visited within a single Process call.
	scratch []float32

	prepared   atomic.Bool
	blockCount atomic.Uint64
}

// New creates an empty AudioGraph using cfg, validating it first. A nil
// observer manager is replaced with one holding no observers.
func New(cfg *config.Config, logger *logging.Logger, observers *observer.Manager) (*AudioGraph, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, ErrInvalidConfig
	}
	if logger == nil {
		logger = logging.New(logging.DefaultConfig())
	}
	if observers == nil {
		observers = observer.NewManager()
	}

	id := uuid.NewString()

	return &AudioGraph{
		id:          id,
		cfg:         cfg,
		logger:      logger.WithGraphID(id),
		observers:   observers,
		nodes:       make(map[NodeID]node.Node),
		topo:        graph.New[NodeID](),
		sampleRate:  cfg.SampleRate,
		numChannels: cfg.NumChannels,
		nodeOutputs: make(map[NodeID][]float32),
	}, nil
}

// ID returns the graph's generated identifier, used to tag log lines and
// observer events when a process hosts more than one AudioGraph.
func (g *AudioGraph) ID() string { return g.id }

// AddNode inserts node n, assigns it a NodeID, calls n.Prepare with the
// graph's current sample rate and max block size, and emits
// observer.EventNodeAdded. Returns ErrMaxNodesExceeded once Config.MaxNodes
// nodes are already present.
func (g *AudioGraph) AddNode(n node.Node) (NodeID, error) {
	if g.cfg.MaxNodes > 0 && len(g.nodes) >= g.cfg.MaxNodes {
		return 0, ErrMaxNodesExceeded
	}

	id := g.nextID
	g.nextID++

	g.topo.AddNode(id)
	n.Prepare(g.sampleRate, g.maxBlockSize)
	g.nodes[id] = n

	if g.maxBlockSize > 0 {
		g.nodeOutputs[id] = make([]float32, g.numChannels*g.maxBlockSize)
	}

	kind := nodeKind(n)
	g.logger.WithNodeID(nodeIDString(id)).WithNodeKind(string(kind)).Debug("node added")
	g.emit(observer.Event{
		Type:     observer.EventNodeAdded,
		NodeID:   nodeIDString(id),
		NodeKind: string(kind),
	})

	return id, nil
}

// RemoveNode deletes a node and every edge touching it, emitting
// observer.EventNodeRemoved. Returns ErrNodeNotFound if id is absent.
func (g *AudioGraph) RemoveNode(id NodeID) error {
	if !g.topo.RemoveNode(id) {
		return ErrNodeNotFound
	}
	delete(g.nodes, id)
	delete(g.nodeOutputs, id)

	g.logger.WithNodeID(nodeIDString(id)).Debug("node removed")
	g.emit(observer.Event{
		Type:   observer.EventNodeRemoved,
		NodeID: nodeIDString(id),
	})
	return nil
}

// AddEdge connects from -> to. Returns ErrNodeNotFound if either endpoint
// is absent, ErrMaxEdgesExceeded if the graph is already at Config.MaxEdges,
// or ErrCycleWouldForm if the edge would close a cycle; a rejection still
// emits observer.EventEdgeRejected so a passive observer can react to it.
func (g *AudioGraph) AddEdge(from, to NodeID) error {
	if g.cfg.MaxEdges > 0 && g.edgeCount() >= g.cfg.MaxEdges {
		g.emit(observer.Event{
			Type:       observer.EventEdgeRejected,
			FromNodeID: nodeIDString(from),
			ToNodeID:   nodeIDString(to),
			Error:      ErrMaxEdgesExceeded,
		})
		return ErrMaxEdgesExceeded
	}

	err := g.topo.AddEdge(from, to)
	if err != nil {
		mapped := mapGraphError(err)
		g.logger.WithError(mapped).Warnf("edge rejected: %s -> %s", nodeIDString(from), nodeIDString(to))
		g.emit(observer.Event{
			Type:       observer.EventEdgeRejected,
			FromNodeID: nodeIDString(from),
			ToNodeID:   nodeIDString(to),
			Error:      mapped,
		})
		return mapped
	}

	g.logger.Debugf("edge added: %s -> %s", nodeIDString(from), nodeIDString(to))
	g.emit(observer.Event{
		Type:       observer.EventEdgeAdded,
		FromNodeID: nodeIDString(from),
		ToNodeID:   nodeIDString(to),
	})
	return nil
}

// RemoveEdge deletes a directed edge. Returns ErrNodeNotFound or
// ErrEdgeNotFound as appropriate.
func (g *AudioGraph) RemoveEdge(from, to NodeID) error {
	if err := g.topo.RemoveEdge(from, to); err != nil {
		return mapGraphError(err)
	}

	g.logger.Debugf("edge removed: %s -> %s", nodeIDString(from), nodeIDString(to))
	g.emit(observer.Event{
		Type:       observer.EventEdgeRemoved,
		FromNodeID: nodeIDString(from),
		ToNodeID:   nodeIDString(to),
	})
	return nil
}

// GetNode returns the node registered under id, or nil and false if
// absent.
func (g *AudioGraph) GetNode(id NodeID) (node.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// ValidateTopology checks inputID and outputID resolve to nodes currently
// in the graph, and that inputID has no inbound edges (Process overwrites
// the input marker's summed predecessor output with the external input,
// so those predecessors would be silently discarded). Intended to be
// called once before arming the audio thread, never from Process.
func (g *AudioGraph) ValidateTopology(inputID, outputID NodeID) error {
	if !g.topo.Contains(inputID) {
		return ErrNodeNotFound
	}
	if !g.topo.Contains(outputID) {
		return ErrNodeNotFound
	}
	if len(g.topo.PredecessorsOf(inputID)) > 0 {
		return ErrInputHasPredecessors
	}
	return nil
}

// Prepare (re)initializes the graph for the given sample rate and maximum
// block size: resizes every node's output cache and scratch buffer, and
// calls Prepare on every node. Must not be called concurrently with
// Process. Emits observer.EventPrepared with the elapsed duration in
// Metadata["duration"].
func (g *AudioGraph) Prepare(sampleRate float32, maxBlockSize int) {
	start := time.Now()

	g.sampleRate = sampleRate
	g.maxBlockSize = maxBlockSize

	g.nodeOutputs = make(map[NodeID][]float32, len(g.nodes))
	for id := range g.nodes {
		g.nodeOutputs[id] = make([]float32, g.numChannels*maxBlockSize)
	}
	g.scratch = make([]float32, g.numChannels*maxBlockSize)

	for _, n := range g.nodes {
		n.Prepare(sampleRate, maxBlockSize)
	}

	g.prepared.Store(true)

	elapsed := time.Since(start)
	g.logger.WithField("duration_ms", float64(elapsed.Microseconds())/1000.0).
		Infof("graph prepared: sample_rate=%.1f max_block_size=%d", sampleRate, maxBlockSize)
	g.emit(observer.Event{
		Type:       observer.EventPrepared,
		SampleRate: sampleRate,
		MaxFrames:  maxBlockSize,
		Metadata:   map[string]interface{}{"duration": elapsed},
	})
}

// Prepared reports whether Prepare has been called at least once. Used by
// the "graph_prepared" health check.
func (g *AudioGraph) Prepared() bool { return g.prepared.Load() }

// Reset clears every node's internal state without forgetting parameters
// set via node setters. Must not be called concurrently with Process.
func (g *AudioGraph) Reset() {
	for _, n := range g.nodes {
		n.Reset()
	}
	g.logger.Debug("graph reset")
	g.emit(observer.Event{Type: observer.EventReset})
}

// BlocksProcessed returns the cumulative number of successful Process
// calls, read by pkg/telemetry through a pull-based observable counter.
// Safe to call from any thread.
func (g *AudioGraph) BlocksProcessed() uint64 { return g.blockCount.Load() }

// NodeCount returns the number of nodes currently in the graph, read by
// pkg/telemetry through a pull-based observable gauge.
func (g *AudioGraph) NodeCount() int64 { return int64(len(g.nodes)) }

// EdgeCount returns the number of edges currently in the graph, read by
// pkg/telemetry through a pull-based observable gauge.
func (g *AudioGraph) EdgeCount() int64 { return int64(g.edgeCount()) }

func (g *AudioGraph) edgeCount() int {
	count := 0
	for _, id := range g.topo.NodeIDs() {
		count += len(g.topo.PredecessorsOf(id))
	}
	return count
}

// Process walks the graph in reverse-topological (source-to-sink) order,
// overwriting buf in place. It is the sole real-time entry point: it
// never allocates, never locks, never logs, never emits an observer
// event, and never calls into the telemetry package directly.
//
// On success it increments an atomic block counter and returns nil. If
// Config.Strict is true, a violated precondition (buf.Channels() other
// than the configured channel count, buf.Frames() over the prepared max
// block size, or an inputID/outputID absent from the graph) panics
// immediately; if false, it degrades by clearing buf and returning
// ErrPreconditionViolated.
func (g *AudioGraph) Process(buf audio.Buffer, inputID, outputID NodeID) error {
	if buf.Channels() != g.numChannels || buf.Frames() > g.maxBlockSize ||
		!g.topo.Contains(inputID) || !g.topo.Contains(outputID) {
		return g.violatePrecondition(buf)
	}

	numChannels := buf.Channels()
	numFrames := buf.Frames()

	audio.Clear(buf)

	processingOrder := g.topo.ReverseTopologicalOrder()

	for _, id := range processingOrder {
		tmpInput, err := audio.NewBuffer(g.scratch[:numChannels*numFrames], numChannels, numFrames)
		if err != nil {
			return g.violatePrecondition(buf)
		}
		audio.Clear(tmpInput)

		for _, predID := range g.topo.PredecessorsOf(id) {
			predOutput, err := audio.NewBuffer(g.nodeOutputs[predID][:numChannels*numFrames], numChannels, numFrames)
			if err != nil {
				continue
			}
			audio.Add(tmpInput, predOutput)
		}

		if id == inputID {
			audio.Copy(tmpInput, buf)
		}

		g.nodes[id].Process(tmpInput)

		nodeOutput, err := audio.NewBuffer(g.nodeOutputs[id][:numChannels*numFrames], numChannels, numFrames)
		if err != nil {
			return g.violatePrecondition(buf)
		}
		audio.Copy(nodeOutput, tmpInput)
	}

	outOutput, err := audio.NewBuffer(g.nodeOutputs[outputID][:numChannels*numFrames], numChannels, numFrames)
	if err != nil {
		return g.violatePrecondition(buf)
	}
	audio.Copy(buf, outOutput)

	g.blockCount.Add(1)
	return nil
}

// violatePrecondition implements Config.Strict's two documented
// behaviors for a precondition violated on the audio thread: Strict
// panics so the violation surfaces immediately in development and CI;
// non-strict degrades by clearing the caller's buffer and returning
// ErrPreconditionViolated, keeping a production audio callback alive.
func (g *AudioGraph) violatePrecondition(buf audio.Buffer) error {
	if g.cfg.Strict {
		panic(ErrPreconditionViolated)
	}
	audio.Clear(buf)
	return ErrPreconditionViolated
}

// emit forwards event to the observer manager with this graph's ID
// stamped on, using a background context: Notify is asynchronous and
// runs each observer in its own goroutine, so no control-thread caller
// blocks on observer work.
func (g *AudioGraph) emit(event observer.Event) {
	event.Timestamp = time.Now()
	event.GraphID = g.id
	g.observers.Notify(context.Background(), event)
}

func mapGraphError(err error) error {
	switch err {
	case graph.ErrNodeNotFound:
		return ErrNodeNotFound
	case graph.ErrCycleWouldForm:
		return ErrCycleWouldForm
	case graph.ErrEdgeNotFound:
		return ErrEdgeNotFound
	default:
		return err
	}
}

func nodeKind(n node.Node) node.Kind {
	if k, ok := n.(node.Kinded); ok {
		return k.Kind()
	}
	return ""
}

func nodeIDString(id NodeID) string {
	return strconv.FormatUint(uint64(id), 10)
}
