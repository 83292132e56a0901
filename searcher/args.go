package searcher

// Hyperparameters for MCTS

// ParentVisitsScale multiplies the parent visit count inside the UCB1 log:
// sqrt(ln(ParentVisitsScale*N)/n)
const ParentVisitsScale = 2.0
