// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package bde provides the core of a Boolean Delay Equation (BDE) simulator.

A BDE model is a finite set of Boolean-valued variables whose present
states are defined by Boolean functions of the variables' past states at
one or more fixed positive time delays. Given a user-supplied transition
function, a set of delay parameters, the variables' histories over an
initial interval, and optionally a set of forcing input time series, the
DelayEngine computes the exact evolution of each state variable from the
end of the history up to a requested end time.

The simulation is event-driven: because every equation is Boolean and
every delay is a positive constant, a variable can only switch at a time
of the form t_s + delay, where t_s is some already known switch time. The
engine exploits this to bound the search for switch times exactly, with no
continuous search and no fixed-step integration.
*/
package bde
